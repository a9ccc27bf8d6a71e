package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTones_CatalogOrder(t *testing.T) {
	t.Parallel()

	var got []string
	for _, tone := range Tones() {
		got = append(got, tone.Slug())
	}

	want := []string{
		"gen-z", "shakespeare", "pirate", "corporate", "yoda", "baby", "cat",
		"dog", "drunk", "angry", "valley-girl", "cowboy", "anime", "superhero",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Tones() mismatch (-want +got):\n%s", diff)
	}
}

func TestToneTable_EveryToneFullyDescribed(t *testing.T) {
	t.Parallel()

	seen := make(map[string]Tone)
	for _, tone := range Tones() {
		info := toneTable[tone]
		if info.slug == "" || info.label == "" || info.menuLabel == "" || info.color == "" || info.instruction == "" {
			t.Errorf("tone %d has incomplete catalog row: %+v", tone, info)
		}
		if prev, dup := seen[info.slug]; dup {
			t.Errorf("slug %q used by tones %d and %d", info.slug, prev, tone)
		}
		seen[info.slug] = tone
	}
}

func TestTone_PromptContainsTextVerbatim(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Please help me",
		`she said "hi" and left`,
		"line one\nline two",
		"   padded   ",
	}

	for _, tone := range Tones() {
		for _, in := range inputs {
			prompt := tone.Prompt(in)
			if strings.TrimSpace(prompt) == "" {
				t.Fatalf("%s: empty prompt", tone)
			}
			if !strings.Contains(prompt, in) {
				t.Errorf("%s: prompt does not contain input %q verbatim: %q", tone, in, prompt)
			}
			if !strings.HasSuffix(prompt, `: "`+in+`"`) {
				t.Errorf("%s: prompt should end with quoted input, got %q", tone, prompt)
			}
		}
	}
}

func TestTone_PromptPirate(t *testing.T) {
	t.Parallel()

	prompt := TonePirate.Prompt("Please help me")

	want := `Rewrite the following text as if a stereotypical pirate is speaking. Use pirate slang, terminology, and speech patterns: "Please help me"`
	if prompt != want {
		t.Fatalf("Prompt() = %q, want %q", prompt, want)
	}
}

func TestTone_PromptUnknownPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown tone")
		}
	}()
	_ = Tone(200).Prompt("x")
}

func TestParseTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{in: "gen-z", want: ToneGenZ},
		{in: "valley-girl", want: ToneValleyGirl},
		{in: " superhero ", want: ToneSuperhero},
		{in: "Pirate", wantErr: true},
		{in: "", wantErr: true},
		{in: "klingon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseTone(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("ParseTone(%q) error = %v, want ErrValidation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTone(%q): unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTone_RoundTripsThroughSlug(t *testing.T) {
	t.Parallel()

	for _, tone := range Tones() {
		got, err := ParseTone(tone.Slug())
		if err != nil {
			t.Fatalf("ParseTone(%q): %v", tone.Slug(), err)
		}
		if got != tone {
			t.Errorf("ParseTone(%q) = %s, want %s", tone.Slug(), got, tone)
		}
	}
}

func TestTone_JSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Tone Tone `json:"tone"`
	}

	b, err := json.Marshal(payload{Tone: ToneYoda})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"tone":"yoda"}` {
		t.Fatalf("marshal = %s", b)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"tone":"cowboy"}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Tone != ToneCowboy {
		t.Errorf("unmarshal tone = %s, want cowboy", p.Tone)
	}

	if err := json.Unmarshal([]byte(`{"tone":"robot"}`), &p); err == nil {
		t.Error("expected error for unknown tone")
	}
	if _, err := json.Marshal(payload{}); err == nil {
		t.Error("expected error marshaling the zero tone")
	}
}

func TestTone_Labels(t *testing.T) {
	t.Parallel()

	if ToneCorporate.Label() != "Corporate" || ToneCorporate.MenuLabel() != "Corporate BS" {
		t.Errorf("corporate labels = %q / %q", ToneCorporate.Label(), ToneCorporate.MenuLabel())
	}
	if ToneDog.Color() != "bg-yellow-500" {
		t.Errorf("dog color = %q", ToneDog.Color())
	}
	if Tone(0).Label() != "" {
		t.Error("invalid tone should have no label")
	}
	if Tone(0).IsValid() || toneCount.IsValid() {
		t.Error("sentinel values must not be valid tones")
	}
}
