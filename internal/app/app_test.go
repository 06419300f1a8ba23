package app_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tinystr"
	"go.trai.ch/tinystr/internal/app"
	"go.trai.ch/tinystr/internal/core/domain"
	"go.trai.ch/tinystr/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestApp_Report(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mocks.NewMockCorpusReader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	long := strings.Repeat("z", tinystr.MaxInline+10)
	mockReader.EXPECT().Tokens(gomock.Any(), "a.txt").Return([]string{"one", "two"}, nil)
	mockReader.EXPECT().Tokens(gomock.Any(), "b.txt").Return([]string{long}, nil)
	mockLogger.EXPECT().Info(gomock.Any()).Times(2)

	a := app.New(mockReader, mockLogger)
	rep, err := a.Report(context.Background(), []string{"a.txt", "b.txt"})
	require.NoError(t, err)

	// Input order is preserved regardless of completion order.
	require.Len(t, rep.Corpora, 2)
	assert.Equal(t, "a.txt", rep.Corpora[0].Path)
	assert.Equal(t, "b.txt", rep.Corpora[1].Path)

	assert.Equal(t, 3, rep.Total.Tokens)
	assert.Equal(t, 2, rep.Total.Inline)
	assert.Equal(t, 1, rep.Total.Heap)
}

func TestApp_Report_NoCorpora(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := app.New(mocks.NewMockCorpusReader(ctrl), mocks.NewMockLogger(ctrl))
	_, err := a.Report(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrNoCorporaSpecified)
}

func TestApp_Report_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := mocks.NewMockCorpusReader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	readErr := zerr.New("corpus unreadable")
	mockReader.EXPECT().Tokens(gomock.Any(), "bad.txt").Return(nil, readErr)
	mockReader.EXPECT().Tokens(gomock.Any(), gomock.Any()).Return([]string{"ok"}, nil).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	a := app.New(mockReader, mockLogger)
	_, err := a.Report(context.Background(), []string{"good.txt", "bad.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read corpus")
}
