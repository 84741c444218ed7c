package presentation

import (
	"context"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/sglre6355/dispatchbot/internal/framework"
	"github.com/sglre6355/dispatchbot/internal/modules/general/application"
)

const (
	testOwnerID   snowflake.ID = 1
	testUserID    snowflake.ID = 42
	testGuildID   snowflake.ID = 500
	testChannelID snowflake.ID = 600
)

// stubMembership is a test double for framework.Membership
type stubMembership struct {
	perms framework.Permissions
	roles []string
}

func (s *stubMembership) PermissionsOf(_ context.Context, _, _ snowflake.ID) (framework.Permissions, error) {
	return s.perms, nil
}

func (s *stubMembership) RolesOf(_ context.Context, _, _ snowflake.ID) ([]string, error) {
	return s.roles, nil
}

type testHarness struct {
	dispatcher *framework.Dispatcher
	sender     *framework.MockSender
	counter    *framework.UsageCounter
	editor     *application.MockChannelEditor
}

func newTestHarness(t *testing.T, membership framework.Membership) *testHarness {
	t.Helper()

	counter := framework.NewUsageCounter()
	editor := &application.MockChannelEditor{}
	handlers := NewHandlers(
		"A command dispatch bot.",
		application.NewUsageInteractor(&counterSource{counter: counter}),
		application.NewSlowmodeInteractor(editor),
	)

	registry := framework.NewRegistry()
	for _, g := range Groups(handlers) {
		if err := registry.Register(g); err != nil {
			t.Fatalf("failed to register group %s: %v", g.Name, err)
		}
	}

	cfg := framework.DefaultConfiguration()
	cfg.Owners = []snowflake.ID{testOwnerID}
	sender := &framework.MockSender{}

	return &testHarness{
		dispatcher: framework.NewDispatcher(cfg, registry, counter, membership, sender),
		sender:     sender,
		counter:    counter,
		editor:     editor,
	}
}

func (h *testHarness) send(author snowflake.ID, guild snowflake.ID, content string) framework.Outcome {
	return h.dispatcher.Dispatch(context.Background(), framework.Message{
		ID:         1,
		ChannelID:  testChannelID,
		GuildID:    guild,
		AuthorID:   author,
		AuthorName: "tester",
		Content:    content,
	})
}

func (h *testHarness) lastReply(t *testing.T) string {
	t.Helper()

	last, ok := h.sender.Last()
	if !ok {
		t.Fatal("expected a reply, got none")
	}
	return last.Content
}
