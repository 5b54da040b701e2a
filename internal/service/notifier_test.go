package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLogNotifier_Notify(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	err := n.Notify(context.Background(), domain.Notification{
		AccountID: "alice", Operation: OpEscrowRelease, Code: "ESC_001", Message: "Escrow cannot move from released to refunded",
	})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"code":"ESC_001"`)
	assert.Contains(t, buf.String(), `"operation":"escrow.release"`)
}

func TestMultiNotifier_DeliversToAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)

	note := domain.Notification{Operation: OpCredit, Success: true}
	first.EXPECT().Notify(gomock.Any(), note).Return(errors.New("webhook down"))
	second.EXPECT().Notify(gomock.Any(), note).Return(nil)

	err := MultiNotifier{first, nil, second}.Notify(context.Background(), note)
	assert.ErrorContains(t, err, "webhook down")
}
