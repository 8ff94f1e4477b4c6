// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06
	TicksPerSec  = 60

	ButtonCanvasSize   = 100 // логический размер холста кнопки
	ButtonDisplaySize  = 96  // размер на экране (w-24)
	ButtonBottomOffset = 32  // отступ снизу (bottom-8)

	PanelPadding    = 32
	PanelMaxWidth   = 896
	CardPadding     = 24
	CardGap         = 48
	LineHeight      = 28
	TitleFontSize   = 48
	HeadingFontSize = 24
	BodyFontSize    = 18
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	ParticleColor   = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextMutedColor  = color.RGBA{229, 231, 235, 255} // gray-200
	LinkColor       = color.RGBA{156, 163, 175, 255} // gray-400
	CardColor       = color.RGBA{17, 24, 39, 77}     // gray-900/30
	CardBorderColor = color.RGBA{31, 41, 55, 255}    // gray-800
)

// Config holds the tunable parameters of the landing page.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Field   FieldConfig   `yaml:"field"`
	Button  ButtonConfig  `yaml:"button"`
	Page    PageConfig    `yaml:"page"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FieldConfig configures the text particle field.
type FieldConfig struct {
	Text              string  `yaml:"text"`
	MobileBreakpoint  int     `yaml:"mobile_breakpoint"`
	ReferenceWidth    int     `yaml:"reference_width"`
	ReferenceHeight   int     `yaml:"reference_height"`
	AlphaThreshold    uint8   `yaml:"alpha_threshold"`
	MaxSampleAttempts int     `yaml:"max_sample_attempts"`
	MaxTextWidthRatio float64 `yaml:"max_text_width_ratio"`
	Ease              float64 `yaml:"ease"`
	RepelStrength     float64 `yaml:"repel_strength"`
	SizeMin           float64 `yaml:"size_min"`
	SizeSpread        float64 `yaml:"size_spread"`
	LifeMin           int     `yaml:"life_min"`
	LifeSpread        int     `yaml:"life_spread"`
	// TopUpBudget caps how many new particles a single frame may try to add.
	TopUpBudget int `yaml:"top_up_budget"`

	Desktop ProfileConfig `yaml:"desktop"`
	Mobile  ProfileConfig `yaml:"mobile"`
}

// ProfileConfig holds the values that differ between mobile and desktop viewports.
type ProfileConfig struct {
	BaseParticles     int     `yaml:"base_particles"`
	InteractionRadius float64 `yaml:"interaction_radius"`
	BaseFontSize      float64 `yaml:"base_font_size"`
	FontScale         float64 `yaml:"font_scale"`
	MaxFontSize       float64 `yaml:"max_font_size"`
}

// ButtonConfig configures the ambient emitter behind the call-to-action button.
type ButtonConfig struct {
	CanvasSize  int     `yaml:"canvas_size"`
	Radius      float64 `yaml:"radius"`
	Jitter      float64 `yaml:"jitter"`
	Batch       int     `yaml:"batch"`
	SpawnChance float64 `yaml:"spawn_chance"`
	Speed       float64 `yaml:"speed"`
	SizeMin     float64 `yaml:"size_min"`
	SizeSpread  float64 `yaml:"size_spread"`
	LifeMin     int     `yaml:"life_min"`
	LifeSpread  int     `yaml:"life_spread"`
	AlphaMin    float64 `yaml:"alpha_min"`
	AlphaSpread float64 `yaml:"alpha_spread"`
}

type PageConfig struct {
	RevealThreshold float64 `yaml:"reveal_threshold"`
	WheelStep       float64 `yaml:"wheel_step"`
	ScrollEase      float64 `yaml:"scroll_ease"`
	FadeSpeed       float64 `yaml:"fade_speed"` // доля непрозрачности в секунду
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the parameters the landing page ships with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Field: FieldConfig{
			Text:              "The Freedom Layer",
			MobileBreakpoint:  768,
			ReferenceWidth:    1920,
			ReferenceHeight:   1080,
			AlphaThreshold:    128,
			MaxSampleAttempts: 100,
			MaxTextWidthRatio: 0.9,
			Ease:              0.1,
			RepelStrength:     60,
			SizeMin:           0.5,
			SizeSpread:        1,
			LifeMin:           50,
			LifeSpread:        100,
			TopUpBudget:       500,
			Desktop: ProfileConfig{
				BaseParticles:     7000,
				InteractionRadius: 240,
				BaseFontSize:      20,
				FontScale:         0.08,
				MaxFontSize:       120,
			},
			Mobile: ProfileConfig{
				BaseParticles:     4000,
				InteractionRadius: 160,
				BaseFontSize:      14,
				FontScale:         0.05,
				MaxFontSize:       60,
			},
		},
		Button: ButtonConfig{
			CanvasSize:  ButtonCanvasSize,
			Radius:      14,
			Jitter:      10,
			Batch:       20,
			SpawnChance: 0.2,
			Speed:       0.01,
			SizeMin:     0.5,
			SizeSpread:  1.2,
			LifeMin:     30,
			LifeSpread:  60,
			AlphaMin:    0.2,
			AlphaSpread: 0.6,
		},
		Page: PageConfig{
			RevealThreshold: 10,
			WheelStep:       48,
			ScrollEase:      0.15,
			FadeSpeed:       2, // 500ms как у transition-opacity
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the animations cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	f := c.Field
	if f.Text == "" {
		errs = append(errs, errors.New("field.text must not be empty"))
	}
	if f.ReferenceWidth <= 0 || f.ReferenceHeight <= 0 {
		errs = append(errs, errors.New("field.reference_width and reference_height must be positive"))
	}
	if f.MaxSampleAttempts <= 0 {
		errs = append(errs, errors.New("field.max_sample_attempts must be positive"))
	}
	if f.Ease <= 0 || f.Ease > 1 {
		errs = append(errs, fmt.Errorf("field.ease must be in (0, 1], got %v", f.Ease))
	}
	if f.LifeMin <= 0 {
		errs = append(errs, errors.New("field.life_min must be positive"))
	}
	for name, p := range map[string]ProfileConfig{"desktop": f.Desktop, "mobile": f.Mobile} {
		if p.BaseFontSize <= 0 || p.MaxFontSize < p.BaseFontSize {
			errs = append(errs, fmt.Errorf("field.%s: font clamp [%v, %v] is empty", name, p.BaseFontSize, p.MaxFontSize))
		}
		if p.InteractionRadius <= 0 {
			errs = append(errs, fmt.Errorf("field.%s.interaction_radius must be positive", name))
		}
		if p.BaseParticles < 0 {
			errs = append(errs, fmt.Errorf("field.%s.base_particles must not be negative", name))
		}
	}
	b := c.Button
	if b.CanvasSize <= 0 {
		errs = append(errs, errors.New("button.canvas_size must be positive"))
	}
	if b.SpawnChance < 0 || b.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("button.spawn_chance must be in [0, 1], got %v", b.SpawnChance))
	}
	if b.LifeMin <= 0 {
		errs = append(errs, errors.New("button.life_min must be positive"))
	}
	pg := c.Page
	if pg.ScrollEase <= 0 || pg.ScrollEase > 1 {
		errs = append(errs, fmt.Errorf("page.scroll_ease must be in (0, 1], got %v", pg.ScrollEase))
	}
	if pg.FadeSpeed <= 0 {
		errs = append(errs, errors.New("page.fade_speed must be positive"))
	}
	return errors.Join(errs...)
}

// Profile returns the viewport profile for the given classification.
func (f FieldConfig) Profile(mobile bool) ProfileConfig {
	if mobile {
		return f.Mobile
	}
	return f.Desktop
}
