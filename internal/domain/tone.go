package domain

import (
	"fmt"
	"strings"
)

// Tone is a stylistic transformation category. The set is closed: every
// tone is declared below and described by exactly one row of toneTable.
type Tone uint8

const (
	toneInvalid Tone = iota

	ToneGenZ
	ToneShakespeare
	TonePirate
	ToneCorporate
	ToneYoda
	ToneBaby
	ToneCat
	ToneDog
	ToneDrunk
	ToneAngry
	ToneValleyGirl
	ToneCowboy
	ToneAnime
	ToneSuperhero

	toneCount
)

// DefaultTone is preselected when a request does not name one.
const DefaultTone = ToneGenZ

// toneInfo is the data each tone variant carries.
type toneInfo struct {
	slug        string
	label       string // badge label shown on feed items
	menuLabel   string // label shown in the tone selector
	color       string
	instruction string
}

// toneTable is indexed by Tone. Prompt, labels and color are kept in one
// row per tone so they cannot drift apart.
var toneTable = [toneCount]toneInfo{
	ToneGenZ: {
		slug: "gen-z", label: "Gen Z", menuLabel: "Gen Z Slang", color: "bg-pink-500",
		instruction: "Rewrite the following text in Gen Z slang. Use current slang terms, abbreviations, and emoji where appropriate. Make it sound authentic to how Gen Z communicates online",
	},
	ToneShakespeare: {
		slug: "shakespeare", label: "Shakespearean", menuLabel: "Shakespearean", color: "bg-purple-500",
		instruction: "Rewrite the following text as if William Shakespeare wrote it. Use Early Modern English, Shakespearean vocabulary, iambic pentameter where possible, and his characteristic style",
	},
	TonePirate: {
		slug: "pirate", label: "Pirate", menuLabel: "Pirate", color: "bg-amber-500",
		instruction: "Rewrite the following text as if a stereotypical pirate is speaking. Use pirate slang, terminology, and speech patterns",
	},
	ToneCorporate: {
		slug: "corporate", label: "Corporate", menuLabel: "Corporate BS", color: "bg-blue-500",
		instruction: "Rewrite the following text using excessive corporate jargon, buzzwords, and business speak. Make it sound like the most stereotypical corporate communication possible",
	},
	ToneYoda: {
		slug: "yoda", label: "Yoda", menuLabel: "Yoda Speak", color: "bg-green-500",
		instruction: "Rewrite the following text in Yoda's speech pattern from Star Wars. Rearrange sentence structure with object-subject-verb order where appropriate and use his characteristic speaking style",
	},
	ToneBaby: {
		slug: "baby", label: "Baby Talk", menuLabel: "Baby Talk", color: "bg-rose-300",
		instruction: "Rewrite the following text as if a baby or toddler is speaking. Use simple words, baby talk, cute mispronunciations, and repetitive patterns",
	},
	ToneCat: {
		slug: "cat", label: "Cat", menuLabel: "Cat", color: "bg-orange-400",
		instruction: "Rewrite the following text as if a cat is speaking. Include cat-like behaviors, meows, references to cat activities, and a feline perspective",
	},
	ToneDog: {
		slug: "dog", label: "Excited Dog", menuLabel: "Excited Dog", color: "bg-yellow-500",
		instruction: "Rewrite the following text as if an excited dog is speaking. Include lots of enthusiasm, references to treats, walks, belly rubs, and typical dog behaviors",
	},
	ToneDrunk: {
		slug: "drunk", label: "Tipsy", menuLabel: "Tipsy", color: "bg-red-400",
		instruction: "Rewrite the following text as if someone who is tipsy is speaking. Include slight word slurring, meandering thoughts, and overly friendly tone (but keep it family-friendly)",
	},
	ToneAngry: {
		slug: "angry", label: "Angry", menuLabel: "Angry", color: "bg-red-600",
		instruction: "Rewrite the following text as if someone is really frustrated and angry (but keep it clean). Use ALL CAPS where appropriate, lots of exclamation marks, and exaggerated expressions of frustration",
	},
	ToneValleyGirl: {
		slug: "valley-girl", label: "Valley Girl", menuLabel: "Valley Girl", color: "bg-pink-400",
		instruction: `Rewrite the following text in valley girl speak. Use "like", "totally", "oh my god", and other valley girl expressions. Make it sound stereotypically valley girl`,
	},
	ToneCowboy: {
		slug: "cowboy", label: "Cowboy", menuLabel: "Cowboy", color: "bg-brown-500",
		instruction: `Rewrite the following text as if a stereotypical cowboy from the Old West is speaking. Use Western slang, "yeehaw", and cowboy expressions`,
	},
	ToneAnime: {
		slug: "anime", label: "Anime", menuLabel: "Anime", color: "bg-indigo-500",
		instruction: "Rewrite the following text as if an over-the-top anime character is speaking. Include anime expressions, references to power levels, and dramatic declarations",
	},
	ToneSuperhero: {
		slug: "superhero", label: "Superhero", menuLabel: "Superhero", color: "bg-sky-500",
		instruction: "Rewrite the following text as if a classic superhero is speaking. Use noble, dramatic language with superhero catchphrases and references to justice and heroic deeds",
	},
}

// Tones returns every tone in catalog order.
func Tones() []Tone {
	out := make([]Tone, 0, toneCount-1)
	for t := toneInvalid + 1; t < toneCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseTone resolves a wire slug (e.g. "valley-girl") to a Tone.
// Matching is exact after trimming surrounding whitespace.
func ParseTone(slug string) (Tone, error) {
	slug = strings.TrimSpace(slug)
	for t := toneInvalid + 1; t < toneCount; t++ {
		if toneTable[t].slug == slug {
			return t, nil
		}
	}
	return toneInvalid, fmt.Errorf("unknown tone %q: %w", slug, ErrValidation)
}

func (t Tone) IsValid() bool {
	return t > toneInvalid && t < toneCount
}

// Slug is the stable identifier used on the wire and in storage.
func (t Tone) Slug() string { return t.info().slug }

func (t Tone) String() string {
	if !t.IsValid() {
		return fmt.Sprintf("Tone(%d)", uint8(t))
	}
	return t.info().slug
}

func (t Tone) Label() string     { return t.info().label }
func (t Tone) MenuLabel() string { return t.info().menuLabel }
func (t Tone) Color() string     { return t.info().color }

// Prompt builds the generation prompt for text. The text is interpolated
// verbatim between double quotes; quotes and newlines are not escaped.
// Prompt panics if t is not one of the catalog tones; callers obtain
// tones through ParseTone or the exported constants.
func (t Tone) Prompt(text string) string {
	if !t.IsValid() {
		panic(fmt.Sprintf("domain: prompt requested for %s", t))
	}
	return t.info().instruction + `: "` + text + `"`
}

func (t Tone) info() toneInfo {
	if !t.IsValid() {
		return toneInfo{}
	}
	return toneTable[t]
}

// MarshalText encodes the tone as its slug.
func (t Tone) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("marshal %s: %w", t, ErrValidation)
	}
	return []byte(t.Slug()), nil
}

// UnmarshalText decodes a slug produced by MarshalText.
func (t *Tone) UnmarshalText(b []byte) error {
	parsed, err := ParseTone(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
