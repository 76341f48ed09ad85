// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestId_Constants(t *testing.T) {
	// Verify all IDs are unique and sequential
	ids := []Id{
		InvalidIntegerId,
		IntegerOutOfRangeId,
		InputNotDirectoryId,
		ConflictingFlagsId,
		MissingFlagDependencyId,
	}

	seen := make(map[Id]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate ID: %d", id)
		}
		seen[id] = true
	}

	// Verify IDs start at 1 (iota + 1)
	if InvalidIntegerId != 1 {
		t.Errorf("InvalidIntegerId = %d, want 1", InvalidIntegerId)
	}
}

func TestGet(t *testing.T) {
	for _, id := range []Id{
		InvalidIntegerId,
		IntegerOutOfRangeId,
		InputNotDirectoryId,
		ConflictingFlagsId,
		MissingFlagDependencyId,
	} {
		card := Get(id)
		if card == nil {
			t.Errorf("Get(%d) = nil, want card", id)
			continue
		}
		if card.Id() != id {
			t.Errorf("Get(%d).Id() = %d, want %d", id, card.Id(), id)
		}
		if strings.TrimSpace(card.MarkdownMsg()) == "" {
			t.Errorf("Get(%d) has an empty card body", id)
		}
	}

	if Get(Id(999)) != nil {
		t.Error("Get(999) != nil, want nil")
	}
}

func TestValues_SortedAndComplete(t *testing.T) {
	cards := Values()
	if len(cards) != len(issues) {
		t.Fatalf("len(Values()) = %d, want %d", len(cards), len(issues))
	}
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Id() >= cards[i].Id() {
			t.Errorf("Values() not ordered by Id: %d before %d", cards[i-1].Id(), cards[i].Id())
		}
	}
}

func TestIssue_Render(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	var gotIn, gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotIn, gotStyle = in, stylePath
		return "rendered", nil
	}

	out, err := Get(ConflictingFlagsId).Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v, want nil", err)
	}
	if out != "rendered" {
		t.Errorf("Render() = %q, want %q", out, "rendered")
	}
	if gotStyle != "dark" {
		t.Errorf("style = %q, want %q", gotStyle, "dark")
	}
	if !strings.Contains(gotIn, "--retina") {
		t.Errorf("rendered body %q does not mention --retina", gotIn)
	}
}

func TestIssue_RenderError(t *testing.T) {
	orig := render
	defer func() { render = orig }()

	render = func(in string, stylePath string) (string, error) {
		return "", errors.New("no terminal")
	}

	if _, err := Get(InvalidIntegerId).Render("dark"); err == nil {
		t.Error("Render() error = nil, want render failure")
	}
}
