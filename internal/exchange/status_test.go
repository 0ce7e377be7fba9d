package exchange

import (
	"context"
	"net/http"
	"testing"
)

func TestStatusUnregistered(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{}`))

	st, err := c.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.Configured {
		t.Error("expected unconfigured status")
	}
}

func TestStatusCounts(t *testing.T) {
	c := newTestClient(t, jsonHandler(http.StatusOK, `{"success":true}`))
	register(t, c)

	c.MarkApplied("m1", "")
	c.MarkApplied("m2", "")
	if _, err := c.Vote(context.Background(), "m1", VoteParams{Value: 1}); err != nil {
		t.Fatalf("vote: %v", err)
	}

	st, err := c.Status()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !st.Configured || st.Name != "test-agent" {
		t.Errorf("credentials not reflected: %+v", st)
	}
	if st.AppliedCount != 2 || st.UnvotedCount != 1 {
		t.Errorf("applied counts wrong: %+v", st)
	}
}
