package element

// GlobalSettings are the device-wide accessibility settings captured alongside a
// population of snapshots.
type GlobalSettings struct {
	VoiceOverRunning   bool   `yaml:"voiceover_running" json:"voiceover_running"`
	BoldText           bool   `yaml:"bold_text" json:"bold_text"`
	ReduceTransparency bool   `yaml:"reduce_transparency" json:"reduce_transparency"`
	DarkerColours      bool   `yaml:"darker_colours" json:"darker_colours"`
	ReduceMotion       bool   `yaml:"reduce_motion" json:"reduce_motion"`
	InvertColours      bool   `yaml:"invert_colours" json:"invert_colours"`
	ContentSize        string `yaml:"content_size,omitempty" json:"content_size,omitempty"`
}
