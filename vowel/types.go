package vowel

// Report is the diagnostic view of a single balance check.
//
// Fields:
//   - Input        — the string that was analyzed, unchanged.
//   - Length       — len(Input) in bytes.
//   - FirstHalf    — Input[:Length/2].
//   - SecondHalf   — Input after the midpoint, center excluded.
//   - FirstVowels  — vowel count of FirstHalf.
//   - SecondVowels — vowel count of SecondHalf.
//   - HasCenter    — true when Length is odd.
//   - Center       — the ignored middle byte; meaningful only if HasCenter.
//   - Balanced     — the same answer IsBalanced(Input) gives.
//   - Summary      — one-line human verdict.
type Report struct {
	Input        string
	Length       int
	FirstHalf    string
	SecondHalf   string
	FirstVowels  int
	SecondVowels int
	HasCenter    bool
	Center       byte
	Balanced     bool
	Summary      string
}

// halves is the shared split of an input string.
type halves struct {
	first, second string
	center        byte
	hasCenter     bool
}

// reportYAML is the wire shape of Report; Center becomes a string.
type reportYAML struct {
	Input        string `yaml:"input"`
	Length       int    `yaml:"length"`
	FirstHalf    string `yaml:"first_half"`
	SecondHalf   string `yaml:"second_half"`
	FirstVowels  int    `yaml:"first_vowels"`
	SecondVowels int    `yaml:"second_vowels"`
	Center       string `yaml:"center,omitempty"`
	Balanced     bool   `yaml:"balanced"`
	Summary      string `yaml:"summary"`
}

// MarshalYAML emits Center as a one-byte string, omitted for even lengths.
func (r Report) MarshalYAML() (interface{}, error) {
	out := reportYAML{
		Input:        r.Input,
		Length:       r.Length,
		FirstHalf:    r.FirstHalf,
		SecondHalf:   r.SecondHalf,
		FirstVowels:  r.FirstVowels,
		SecondVowels: r.SecondVowels,
		Balanced:     r.Balanced,
		Summary:      r.Summary,
	}
	if r.HasCenter {
		out.Center = string([]byte{r.Center})
	}

	return out, nil
}
