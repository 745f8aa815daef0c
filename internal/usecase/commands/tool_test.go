//go:build unit

package commands_test

import (
	"context"
	"testing"

	"toolshare/internal/domain/tool"
	reqdto "toolshare/internal/handler/dto/request"
	"toolshare/internal/infra"
	"toolshare/internal/pkg/errs"
	"toolshare/internal/usecase/commands"
	"toolshare/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ToolCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	h    *txHarness
	cmds commands.ToolCommands

	ownerID uuid.UUID
}

func (s *ToolCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.h = newTxHarness(s.ctrl)
	s.cmds = commands.NewToolCommands(s.h.uow, s.h.clock)
	s.ownerID = uuid.New()
}

func (s *ToolCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestToolCommandsSuite(t *testing.T) {
	suite.Run(t, new(ToolCommandsTestSuite))
}

func (s *ToolCommandsTestSuite) TestCreate() {
	req := builder.NewToolBuilder().WithDailyPriceCents(1999).BuildCreateRequestDTO()

	s.Run("stores the tool with the price in cents", func() {
		s.h.tools.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		created, err := s.cmds.Create(context.Background(), s.ownerID, req)
		s.Require().NoError(err)
		s.Equal(int64(1999), created.DailyPrice().Cents())
		s.Equal(s.ownerID, created.OwnerID())
		s.Equal(tool.StatusAvailable, created.Status())
	})

	s.Run("owner deleted meanwhile", func() {
		s.h.tools.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("owner missing", nil, infra.KindForeignKeyViolated))

		_, err := s.cmds.Create(context.Background(), s.ownerID, req)
		s.ErrorIs(err, errs.ErrUserNotFound)
	})
}

func (s *ToolCommandsTestSuite) TestUpdate() {
	price := 25.0

	s.Run("owner patches the price", func() {
		t := builder.NewToolBuilder().WithOwner(s.ownerID).BuildDomain()
		s.h.tools.EXPECT().LockByID(gomock.Any(), t.ID()).Return(t, nil)
		s.h.tools.EXPECT().Update(gomock.Any(), t).Return(nil)

		updated, err := s.cmds.Update(context.Background(), s.ownerID, t.ID(), reqdto.UpdateToolRequest{DailyPrice: &price})
		s.Require().NoError(err)
		s.Equal(int64(2500), updated.DailyPrice().Cents())
		s.Equal("Cordless Drill", updated.Name())
	})

	s.Run("someone else", func() {
		t := builder.NewToolBuilder().WithOwner(s.ownerID).BuildDomain()
		s.h.tools.EXPECT().LockByID(gomock.Any(), t.ID()).Return(t, nil)

		_, err := s.cmds.Update(context.Background(), uuid.New(), t.ID(), reqdto.UpdateToolRequest{DailyPrice: &price})
		s.ErrorIs(err, tool.ErrNotOwner)
		s.ErrorIs(err, errs.ErrForbidden)
	})
}

func (s *ToolCommandsTestSuite) TestDelete() {
	s.Run("admin may delete any tool", func() {
		t := builder.NewToolBuilder().WithOwner(s.ownerID).BuildDomain()
		s.h.tools.EXPECT().LockByID(gomock.Any(), t.ID()).Return(t, nil)
		s.h.tools.EXPECT().Delete(gomock.Any(), t.ID()).Return(nil)

		s.NoError(s.cmds.Delete(context.Background(), uuid.New(), true, t.ID()))
	})

	s.Run("non-owner is refused", func() {
		t := builder.NewToolBuilder().WithOwner(s.ownerID).BuildDomain()
		s.h.tools.EXPECT().LockByID(gomock.Any(), t.ID()).Return(t, nil)

		s.ErrorIs(s.cmds.Delete(context.Background(), uuid.New(), false, t.ID()), errs.ErrForbidden)
	})

	s.Run("missing tool", func() {
		id := uuid.New()
		s.h.tools.EXPECT().LockByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("tool not found", nil, infra.KindNotFound))

		s.ErrorIs(s.cmds.Delete(context.Background(), s.ownerID, false, id), errs.ErrToolNotFound)
	})
}
