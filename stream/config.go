package stream

// Config holds the application settings read from the YAML config file.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	FrameRate     float64 `yaml:"frameRate"`
	AnimationSecs float64 `yaml:"animationSecs"`
	FadeSecs      float64 `yaml:"fadeSecs"`
}
