package presentation

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/sglre6355/dispatchbot/internal/framework"
	"github.com/sglre6355/dispatchbot/internal/modules/general/domain"
)

// counterSource adapts a UsageCounter for tests without the infrastructure package.
type counterSource struct {
	counter *framework.UsageCounter
}

func (s *counterSource) Usage() []domain.CommandUsage {
	var rows []domain.CommandUsage
	for _, u := range s.counter.Snapshot() {
		rows = append(rows, domain.CommandUsage{Name: u.Name, Count: u.Count})
	}
	return rows
}

func TestGroups_Register(t *testing.T) {
	groups := Groups(NewHandlers("", nil, nil))

	registry := framework.NewRegistry()
	for _, g := range groups {
		if err := registry.Register(g); err != nil {
			t.Fatalf("failed to register group %s: %v", g.Name, err)
		}
	}

	if len(groups) != 3 || !groups[2].IsRoot() {
		t.Error("expected the root group to be registered last")
	}
}

func TestHandlers_About(t *testing.T) {
	h := newTestHarness(t, nil)

	if out := h.send(testUserID, 0, "~about"); out.Kind != framework.OutcomeSucceeded {
		t.Fatalf("expected success, got %v", out.Kind)
	}
	if got := h.lastReply(t); got != "A command dispatch bot." {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_Ping(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~ping")

	if got := h.lastReply(t); got != "User **tester** used the 'ping' command in the <#600>" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_MessageMe(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~messageme")

	last, _ := h.sender.Last()
	if last.UserID != testUserID || last.Content != "Hellow!" {
		t.Errorf("expected direct Hellow! to user 42, got %+v", last)
	}
}

func TestHandlers_Say(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~say hello,   @everyone")

	if got := h.lastReply(t); got != "hello,   @\u200beveryone" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_Say_WithoutArguments(t *testing.T) {
	h := newTestHarness(t, nil)

	out := h.send(testUserID, testGuildID, "~say")

	var checkErr *framework.CheckFailedError
	if out.Kind != framework.OutcomeCheckFailed || !errors.As(out.Err, &checkErr) {
		t.Fatalf("expected check failure, got %v (%v)", out.Kind, out.Err)
	}
	if checkErr.Check != "has_arguments" || checkErr.Message != "I need something to say." {
		t.Errorf("unexpected check failure %+v", checkErr)
	}
}

func TestHandlers_Commands(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~ping")
	h.send(testUserID, testGuildID, "~ping")
	h.send(testUserID, testGuildID, "~commands")

	if got := h.lastReply(t); got != "Commands used:\n- ping: 2\n- commands: 1" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_Multiply(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~times 2.5, 4")

	if got := h.lastReply(t); got != "10" {
		t.Errorf("expected 10, got %q", got)
	}
	if h.counter.Count("multiply") != 1 {
		t.Error("expected usage to be recorded under the command name")
	}
}

func TestHandlers_Multiply_InvalidArguments(t *testing.T) {
	h := newTestHarness(t, nil)

	if out := h.send(testUserID, testGuildID, "~multiply two 3"); out.Kind != framework.OutcomeSucceeded {
		t.Fatalf("expected success, got %v", out.Kind)
	}
	if got := h.lastReply(t); got != "Usage: multiply <number> <number>" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_Multiply_Ratelimited(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~multiply 1 2")
	out := h.send(testUserID, testGuildID, "~multiply 3 4")

	var rlErr *framework.RatelimitedError
	if out.Kind != framework.OutcomeRatelimited || !errors.As(out.Err, &rlErr) {
		t.Fatalf("expected rate limit, got %v", out.Kind)
	}
	if rlErr.Bucket != "complicated" {
		t.Errorf("expected complicated bucket, got %q", rlErr.Bucket)
	}
}

func TestHandlers_Emoji(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"~emoji", "🐦"},
		{"~em cat", "🐱"},
		{"~emoji kitty", "🐱"},
		{"~em dog", "🐕"},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			h := newTestHarness(t, nil)

			if out := h.send(testUserID, testGuildID, tt.content); out.Kind != framework.OutcomeSucceeded {
				t.Fatalf("expected success, got %v", out.Kind)
			}
			if got := h.lastReply(t); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHandlers_Emoji_SharedBucket(t *testing.T) {
	h := newTestHarness(t, nil)

	h.send(testUserID, testGuildID, "~em cat")
	out := h.send(testUserID, testGuildID, "~em dog")

	if out.Kind != framework.OutcomeRatelimited {
		t.Errorf("expected emoji commands to share a bucket, got %v", out.Kind)
	}
}

func TestHandlers_AmIAdmin(t *testing.T) {
	tests := []struct {
		name       string
		membership *stubMembership
		want       framework.OutcomeKind
	}{
		{"admin role", &stubMembership{roles: []string{"Admin"}}, framework.OutcomeSucceeded},
		{"administrator permission", &stubMembership{perms: framework.Permissions(discordgo.PermissionAdministrator)}, framework.OutcomeSucceeded},
		{"neither", &stubMembership{roles: []string{"Member"}}, framework.OutcomeCheckFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t, tt.membership)

			if out := h.send(testUserID, testGuildID, "~am_i_admin"); out.Kind != tt.want {
				t.Errorf("expected %v, got %v", tt.want, out.Kind)
			}
		})
	}
}

func TestHandlers_AmIAdmin_DirectMessage(t *testing.T) {
	h := newTestHarness(t, &stubMembership{roles: []string{"Admin"}})

	out := h.send(testUserID, 0, "~am_i_admin")

	var checkErr *framework.CheckFailedError
	if !errors.As(out.Err, &checkErr) || checkErr.Check != framework.CheckGuildOnly {
		t.Errorf("expected guild-only failure, got %v", out.Err)
	}
}

func TestHandlers_Slowmode(t *testing.T) {
	h := newTestHarness(t, &stubMembership{})

	if out := h.send(testOwnerID, testGuildID, "~owner slowmode 30"); out.Kind != framework.OutcomeSucceeded {
		t.Fatalf("expected success, got %v (%v)", out.Kind, out.Err)
	}

	if h.editor.ChannelID != testChannelID || h.editor.Seconds != 30 {
		t.Errorf("unexpected editor call %+v", h.editor)
	}
	if got := h.lastReply(t); got != "Successfully set slowmode to 30 seconds." {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestHandlers_Slowmode_OwnersOnly(t *testing.T) {
	h := newTestHarness(t, &stubMembership{perms: framework.Permissions(discordgo.PermissionManageChannels)})

	out := h.send(testUserID, testGuildID, "~owner slowmode 30")

	var checkErr *framework.CheckFailedError
	if !errors.As(out.Err, &checkErr) || checkErr.Check != framework.CheckOwnersOnly {
		t.Errorf("expected owners-only failure, got %v", out.Err)
	}
	if h.editor.Calls != 0 {
		t.Error("expected slowmode not to be applied")
	}
}

func TestHandlers_Slowmode_InvalidValue(t *testing.T) {
	h := newTestHarness(t, &stubMembership{})

	h.send(testOwnerID, testGuildID, "~owner slowmode 99999")

	if got := h.lastReply(t); got != "Slowmode must be between 0 and 21600 seconds." {
		t.Errorf("unexpected reply %q", got)
	}
	if h.editor.Calls != 0 {
		t.Error("expected slowmode not to be applied")
	}
}

func TestHandlers_Slowmode_Unavailable(t *testing.T) {
	h := NewHandlers("", nil, nil)

	err := h.HandleSlowmode(context.Background(), framework.NewDispatchContext(framework.Message{}, nil), nil)
	if !errors.Is(err, ErrSlowmodeUnavailable) {
		t.Errorf("expected ErrSlowmodeUnavailable, got %v", err)
	}
}
