package specialist

import "strings"

// CompatibilityHandler answers gear-compatibility questions from a small
// fixed set of pre-authored recommendations. There is no ranking or
// retrieval, only category pattern-matching over the query text.
type CompatibilityHandler struct{}

func NewCompatibilityHandler() *CompatibilityHandler {
	return &CompatibilityHandler{}
}

type gearCategory struct {
	keywords []string
	advice   string
}

var gearCategories = []gearCategory{
	{
		keywords: []string{"mic", "microphone", "rode", "shure", "condenser", "dynamic", "nt1", "sm58", "sm7b"},
		advice: "Microphone compatibility:\n" +
			"Any XLR dynamic or condenser microphone works with the XLR/TRS combo inputs on Zoom recorders. " +
			"Popular pairings include the Rode NT1, Shure SM58, and Shure SM7B. " +
			"Condenser mics need phantom power - enable 48V on the input you're using. " +
			"Dynamic mics like the SM7B benefit from an inline gain booster on quieter recorders.",
	},
	{
		keywords: []string{"headphone", "headphones", "monitoring", "monitor", "earphone"},
		advice: "Headphone compatibility:\n" +
			"Closed-back monitoring headphones such as the Sony MDR-7506 or Audio-Technica ATH-M50x " +
			"are the usual choice for tracking on Zoom recorders. " +
			"Plug into the dedicated headphone output (3.5mm on portable models); " +
			"lower-impedance headphones get more level from the built-in amp.",
	},
	{
		keywords: []string{"cable", "cables", "cord", "adapter", "xlr cable", "trs"},
		advice: "Cable recommendations:\n" +
			"Use balanced XLR cables for microphones and balanced TRS cables for line-level sources. " +
			"Keep unbalanced runs short to avoid noise pickup. " +
			"For connecting to a computer, the USB port doubles as an audio interface - no special cable needed beyond USB.",
	},
}

const generalCompatibilityAdvice = "General compatibility notes:\n" +
	"Most professional audio gear is compatible with Zoom recorders. " +
	"XLR inputs accept most microphones, TRS inputs work with line-level sources, " +
	"and USB mode allows direct computer connection. " +
	"Phantom power (48V) is available on all XLR inputs - check the power requirements of each device. " +
	"Always verify compatibility with your specific Zoom model against the manufacturer specifications."

// Search returns the canned recommendation for the first matching gear
// category, or the general compatibility notes when nothing matches.
func (h *CompatibilityHandler) Search(query string) string {
	q := strings.ToLower(query)
	for _, cat := range gearCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(q, kw) {
				return cat.advice
			}
		}
	}
	return generalCompatibilityAdvice
}
