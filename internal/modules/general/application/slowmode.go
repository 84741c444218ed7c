package application

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application/ports"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// SlowmodeInteractor applies channel slowmode.
type SlowmodeInteractor struct {
	editor ports.ChannelEditor
}

// NewSlowmodeInteractor creates a new SlowmodeInteractor.
func NewSlowmodeInteractor(editor ports.ChannelEditor) *SlowmodeInteractor {
	return &SlowmodeInteractor{editor: editor}
}

// SlowmodeInput contains the input for the slowmode use case.
type SlowmodeInput struct {
	ChannelID snowflake.ID
	Seconds   int64
}

// Execute validates and applies the slowmode, returning the confirmation text.
func (s *SlowmodeInteractor) Execute(ctx context.Context, input SlowmodeInput) (string, error) {
	slowmode, err := domain.NewSlowmode(input.Seconds)
	if err != nil {
		return "", err
	}

	if err := s.editor.SetSlowmode(ctx, input.ChannelID, slowmode.Seconds()); err != nil {
		return "", fmt.Errorf("failed to set slowmode: %w", err)
	}

	return slowmode.Describe(), nil
}
