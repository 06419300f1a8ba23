package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tinystr/cmd/tinystr/commands"
	"go.trai.ch/tinystr/internal/app"
	"go.trai.ch/tinystr/internal/core/domain"
	"go.trai.ch/tinystr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"
)

func newTestCLI(t *testing.T, tokens []string) (*commands.CLI, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockReader := mocks.NewMockCorpusReader(ctrl)
	mockReader.EXPECT().Tokens(gomock.Any(), gomock.Any()).Return(tokens, nil).AnyTimes()
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	cli := commands.New(app.New(mockReader, mockLogger))

	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	return cli, &out
}

func TestReport_Text(t *testing.T) {
	cli, out := newTestCLI(t, []string{"one", "two"})

	cli.SetArgs([]string{"report", "a.txt"})
	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "a.txt: 2 tokens (2 distinct), 2 inline / 0 heap")
	assert.Contains(t, out.String(), "total: 2 tokens")
}

func TestReport_YAML(t *testing.T) {
	cli, out := newTestCLI(t, []string{"alpha", "beta", "alpha"})

	cli.SetArgs([]string{"report", "a.txt", "--format", "yaml"})
	require.NoError(t, cli.Execute(context.Background()))

	var rep domain.Report
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rep))
	assert.Equal(t, 3, rep.Total.Tokens)
	assert.Equal(t, 2, rep.Total.Distinct)
}

func TestReport_UnknownFormat(t *testing.T) {
	cli, _ := newTestCLI(t, []string{"tok"})

	cli.SetArgs([]string{"report", "a.txt", "--format", "json"})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestReport_NoArgsShowsHelp(t *testing.T) {
	cli, out := newTestCLI(t, nil)

	cli.SetArgs([]string{"report"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")
}

func TestVersion(t *testing.T) {
	cli, out := newTestCLI(t, nil)

	cli.SetArgs([]string{"version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "dev")
}
