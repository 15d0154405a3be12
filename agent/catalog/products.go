package catalog

// ProductRecord describes one Zoom product: ordered specifications plus
// a feature list, formatted by the product handler.
type ProductRecord struct {
	Model      string
	Category   string
	Specs      []Spec
	Features   []string
	PriceRange string

	// aliases are lowercase keywords that identify this model in a
	// free-text description.
	aliases []string
}

type Spec struct {
	Name  string
	Value string
}

var mockProducts = []ProductRecord{
	{
		Model:    "Zoom H6",
		Category: "Portable Recorder",
		Specs: []Spec{
			{"Tracks", "6 simultaneous tracks"},
			{"Inputs", "4 XLR/TRS combo inputs + 2 built-in mics"},
			{"Sample rate", "Up to 96kHz/24-bit"},
			{"Battery", "AA batteries or USB power"},
			{"Storage", "SD/SDHC cards up to 32GB"},
			{"Weight", "0.6 lbs (270g)"},
		},
		Features: []string{
			"Interchangeable mic capsules",
			"Built-in stereo mics",
			"USB audio interface mode",
			"Multi-track recording",
			"Phantom power (48V)",
		},
		PriceRange: "$399-499",
		aliases:    []string{"h6", "6 track", "six track", "portable recorder"},
	},
	{
		Model:    "Zoom H4n Pro",
		Category: "Portable Recorder",
		Specs: []Spec{
			{"Tracks", "4 simultaneous tracks"},
			{"Inputs", "2 XLR/TRS combo inputs + 2 built-in mics"},
			{"Sample rate", "Up to 96kHz/24-bit"},
			{"Battery", "AA batteries or USB power"},
			{"Storage", "SD/SDHC cards up to 32GB"},
			{"Weight", "0.5 lbs (230g)"},
		},
		Features: []string{
			"Built-in stereo mics",
			"USB audio interface mode",
			"Multi-track recording",
			"Phantom power (48V)",
			"Compact design",
		},
		PriceRange: "$199-299",
		aliases:    []string{"h4n", "h4n pro", "4 track", "four track"},
	},
	{
		Model:    "Zoom PodTrak P4",
		Category: "Podcast Recorder",
		Specs: []Spec{
			{"Tracks", "4 simultaneous tracks"},
			{"Inputs", "4 XLR inputs"},
			{"Sample rate", "Up to 48kHz/24-bit"},
			{"Battery", "AA batteries or USB power"},
			{"Storage", "SD/SDHC cards up to 32GB"},
			{"Weight", "0.7 lbs (320g)"},
		},
		Features: []string{
			"Dedicated podcast features",
			"Sound pad for effects",
			"USB audio interface mode",
			"Multi-track recording",
			"Phantom power (48V)",
			"Headphone monitoring",
		},
		PriceRange: "$199-249",
		aliases:    []string{"podtrak", "p4", "podcast", "podcasting"},
	},
	{
		Model:    "Zoom F8n",
		Category: "Field Recorder",
		Specs: []Spec{
			{"Tracks", "8 simultaneous tracks"},
			{"Inputs", "8 XLR/TRS combo inputs"},
			{"Sample rate", "Up to 192kHz/24-bit"},
			{"Battery", "NP-F970 battery or DC power"},
			{"Storage", "SD/SDHC/SDXC cards up to 512GB"},
			{"Weight", "2.2 lbs (1kg)"},
		},
		Features: []string{
			"Professional field recording",
			"Timecode support",
			"Dual SD card slots",
			"Advanced mixing features",
			"Phantom power (48V)",
			"Bluetooth control",
		},
		PriceRange: "$999-1299",
		aliases:    []string{"f8n", "f8", "field recorder", "8 track"},
	},
	{
		Model:    "Zoom Q2n",
		Category: "Video Recorder",
		Specs: []Spec{
			{"Video", "1080p HD video"},
			{"Audio", "2-channel audio recording"},
			{"Inputs", "1 XLR input + built-in mics"},
			{"Sample rate", "Up to 96kHz/24-bit"},
			{"Battery", "AA batteries or USB power"},
			{"Storage", "SD/SDHC cards up to 32GB"},
		},
		Features: []string{
			"HD video recording",
			"Built-in stereo mics",
			"USB audio interface mode",
			"Compact design",
			"Easy mounting options",
		},
		PriceRange: "$149-199",
		aliases:    []string{"q2n", "video", "camera", "video recorder"},
	},
	{
		Model:    "Zoom R8",
		Category: "Studio Recorder",
		Specs: []Spec{
			{"Tracks", "8 simultaneous tracks"},
			{"Inputs", "2 XLR/TRS combo inputs + 6 virtual tracks"},
			{"Sample rate", "Up to 44.1kHz/16-bit"},
			{"Power", "USB power or AC adapter"},
			{"Storage", "SD/SDHC cards up to 32GB"},
			{"Weight", "1.1 lbs (500g)"},
		},
		Features: []string{
			"Built-in drum machine",
			"USB audio interface mode",
			"Multi-track recording",
			"Phantom power (48V)",
			"MIDI control",
			"Built-in effects",
		},
		PriceRange: "$299-399",
		aliases:    []string{"r8", "studio recorder", "8 track studio"},
	},
}
