package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"camelsnake.dev/pkg/camelsnake/internal/domain"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

func TestListCmd(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newListCmd())
	root := t.TempDir()

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Root == m.Path(root) &&
			len(args.Modules) == 1 &&
			args.Modules[0] == "cart.py" &&
			args.Marker == "_XxX_Seen_XxX_"
	})).Return(nil)

	cmd.SetArgs([]string{"list", "--marker", "_XxX_Seen_XxX_", root, "cart.py"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_Error(t *testing.T) {
	cmd, mockWorkflow, _ := newTestRoot(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.Anything).Return(errors.New("boom"))

	cmd.SetArgs([]string{"list", t.TempDir()})
	assert.EqualError(t, cmd.Execute(), "boom")
}
