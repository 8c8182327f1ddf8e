package journal_test

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"

	"github.com/cryptonstudio/crypton-avl/providers/journal"
	mockjournal "github.com/cryptonstudio/crypton-avl/providers/journal/mocks"
)

func sampleJournal(t *testing.T) []byte {
	buf := new(bytes.Buffer)
	w := journal.NewWriter(buf)
	require.NoError(t, w.WriteInsert(uint128.From64(5), 50))
	require.NoError(t, w.WriteInsert(uint128.Max, 1))
	require.NoError(t, w.WriteFind(uint128.From64(5)))
	require.NoError(t, w.WriteDelete(uint128.From64(5)))
	require.NoError(t, w.WriteClear())
	require.Equal(t, 5, w.Written())
	require.NoError(t, w.Flush())
	data, err := journal.AppendRawMessage(buf.Bytes(), []byte{'?', 7})
	require.NoError(t, err)
	return data
}

func expectSample(handler *mockjournal.MockHandler) {
	gomock.InOrder(
		handler.EXPECT().OnInsertMessage(journal.InsertMessage{Type: 'I', Key: uint128.From64(5), Value: 50}),
		handler.EXPECT().OnInsertMessage(journal.InsertMessage{Type: 'I', Key: uint128.Max, Value: 1}),
		handler.EXPECT().OnFindMessage(journal.FindMessage{Type: 'F', Key: uint128.From64(5)}),
		handler.EXPECT().OnDeleteMessage(journal.DeleteMessage{Type: 'D', Key: uint128.From64(5)}),
		handler.EXPECT().OnClearMessage(journal.ClearMessage{Type: 'C'}),
		handler.EXPECT().OnUnknownMessage(journal.UnknownMessage{Type: '?', Data: []byte{'?', 7}}),
	)
}

func TestProcessor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	data := sampleJournal(t)

	t.Run("whole stream", func(t *testing.T) {
		handler := mockjournal.NewMockHandler(ctrl)
		expectSample(handler)

		processor := journal.NewProcessor(handler)
		require.NoError(t, processor.Process(bytes.NewReader(data)))
		require.Equal(t, 6, processor.Processed())
	})

	t.Run("one byte reads", func(t *testing.T) {
		handler := mockjournal.NewMockHandler(ctrl)
		expectSample(handler)

		processor := journal.NewProcessor(handler)
		require.NoError(t, processor.Process(iotest.OneByteReader(bytes.NewReader(data))))
	})

	t.Run("every split point", func(t *testing.T) {
		for split := 0; split <= len(data); split++ {
			handler := mockjournal.NewMockHandler(ctrl)
			expectSample(handler)

			processor := journal.NewProcessor(handler)
			require.NoError(t, processor.ProcessChunk(data[:split]))
			require.NoError(t, processor.ProcessChunk(data[split:]))
		}
	})

	t.Run("truncated stream", func(t *testing.T) {
		handler := mockjournal.NewMockHandler(ctrl)
		handler.EXPECT().OnInsertMessage(gomock.Any()).Times(1)

		processor := journal.NewProcessor(handler)
		err := processor.Process(bytes.NewReader(data[:2+25+3]))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("invalid size", func(t *testing.T) {
		handler := mockjournal.NewMockHandler(ctrl)

		processor := journal.NewProcessor(handler)
		err := processor.Process(bytes.NewReader([]byte{0, 2, 'C', 0}))
		require.ErrorIs(t, err, journal.ErrorInvalidMessageSize)

		processor = journal.NewProcessor(handler)
		err = processor.Process(bytes.NewReader([]byte{0, 0}))
		require.ErrorIs(t, err, journal.ErrorInvalidMessageSize)
	})

	t.Run("handler error stops processing", func(t *testing.T) {
		errStop := errors.New("stop")
		handler := mockjournal.NewMockHandler(ctrl)
		handler.EXPECT().OnInsertMessage(gomock.Any()).Return(errStop).Times(1)

		processor := journal.NewProcessor(handler)
		err := processor.Process(bytes.NewReader(data))
		require.ErrorIs(t, err, errStop)
		require.Equal(t, 1, processor.Processed())
	})

	t.Run("read error", func(t *testing.T) {
		errRead := errors.New("read")
		processor := journal.NewProcessor(mockjournal.NewMockHandler(ctrl))
		require.ErrorIs(t, processor.Process(iotest.ErrReader(errRead)), errRead)
	})
}
