package application

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

func TestSlowmodeInteractor_Execute(t *testing.T) {
	editor := &MockChannelEditor{}
	interactor := NewSlowmodeInteractor(editor)

	msg, err := interactor.Execute(context.Background(), SlowmodeInput{
		ChannelID: snowflake.ID(600),
		Seconds:   10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg != "Successfully set slowmode to 10 seconds." {
		t.Errorf("unexpected message %q", msg)
	}
	if editor.ChannelID != snowflake.ID(600) || editor.Seconds != 10 {
		t.Errorf("unexpected editor call %+v", editor)
	}
}

func TestSlowmodeInteractor_Execute_InvalidValue(t *testing.T) {
	editor := &MockChannelEditor{}
	interactor := NewSlowmodeInteractor(editor)

	_, err := interactor.Execute(context.Background(), SlowmodeInput{ChannelID: 600, Seconds: -5})
	if !errors.Is(err, domain.ErrInvalidSlowmode) {
		t.Errorf("expected ErrInvalidSlowmode, got %v", err)
	}
	if editor.Calls != 0 {
		t.Error("expected editor not to be called")
	}
}

func TestSlowmodeInteractor_Execute_EditorError(t *testing.T) {
	expectedErr := errors.New("missing permissions")
	interactor := NewSlowmodeInteractor(&MockChannelEditor{Err: expectedErr})

	_, err := interactor.Execute(context.Background(), SlowmodeInput{ChannelID: 600, Seconds: 0})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}
