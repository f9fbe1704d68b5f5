package annotate

import (
	"errors"
	"testing"

	"github.com/mood-journal/core/internal/config"
)

func TestParseResult(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		raw := `{"mood":"happy","subject":"the beach","summary":"I had a great day at the beach.","color":"#fde047","negative":false,"sentiment_score":7}`
		result, err := parseResult(raw)
		if err != nil {
			t.Fatalf("parseResult: %v", err)
		}
		if result.Mood != "happy" || result.SentimentScore != 7 {
			t.Errorf("got %+v", result)
		}
		if result.Negative {
			t.Error("negative should be false")
		}
	})

	t.Run("fenced json", func(t *testing.T) {
		raw := "```json\n{\"mood\":\"tense\",\"subject\":\"work\",\"summary\":\"Deadlines piled up.\",\"color\":\"#f00\",\"negative\":true,\"sentiment_score\":-4}\n```"
		result, err := parseResult(raw)
		if err != nil {
			t.Fatalf("parseResult: %v", err)
		}
		if result.SentimentScore != -4 || !result.Negative {
			t.Errorf("got %+v", result)
		}
	})

	t.Run("json embedded in prose", func(t *testing.T) {
		raw := `Here is the analysis: {"mood":"calm","subject":"a walk","summary":"A quiet walk.","color":"#00ff00","negative":false,"sentiment_score":3} Hope that helps!`
		if _, err := parseResult(raw); err != nil {
			t.Fatalf("parseResult: %v", err)
		}
	})

	t.Run("score clamped into range", func(t *testing.T) {
		raw := `{"mood":"ecstatic","subject":"news","summary":"Best news ever.","color":"#ffffff","negative":false,"sentiment_score":42}`
		result, err := parseResult(raw)
		if err != nil {
			t.Fatalf("parseResult: %v", err)
		}
		if result.SentimentScore != 10 {
			t.Errorf("score = %d, want 10", result.SentimentScore)
		}
	})

	t.Run("invalid color", func(t *testing.T) {
		raw := `{"mood":"happy","subject":"x","summary":"y","color":"yellow","negative":false,"sentiment_score":1}`
		if _, err := parseResult(raw); !errors.Is(err, ErrInvalidOutput) {
			t.Fatalf("err = %v, want ErrInvalidOutput", err)
		}
	})

	t.Run("missing mood", func(t *testing.T) {
		raw := `{"subject":"x","summary":"y","color":"#fff","negative":false,"sentiment_score":1}`
		if _, err := parseResult(raw); !errors.Is(err, ErrInvalidOutput) {
			t.Fatalf("err = %v, want ErrInvalidOutput", err)
		}
	})

	t.Run("fractional score", func(t *testing.T) {
		raw := `{"mood":"ok","subject":"x","summary":"y","color":"#fff","negative":false,"sentiment_score":2.5}`
		if _, err := parseResult(raw); !errors.Is(err, ErrInvalidOutput) {
			t.Fatalf("err = %v, want ErrInvalidOutput", err)
		}
	})

	t.Run("not json at all", func(t *testing.T) {
		if _, err := parseResult("I feel like this entry is pretty happy!"); !errors.Is(err, ErrInvalidOutput) {
			t.Fatalf("err = %v, want ErrInvalidOutput", err)
		}
	})
}

func TestClampScore(t *testing.T) {
	cases := []struct{ in, want int }{
		{-15, -10},
		{-10, -10},
		{0, 0},
		{10, 10},
		{99, 10},
	}
	for _, tc := range cases {
		if got := ClampScore(tc.in); got != tc.want {
			t.Errorf("ClampScore(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestSelectProvider(t *testing.T) {
	cfg := testAIConfig()

	t.Run("first enabled wins without assignment", func(t *testing.T) {
		provider := selectProvider(cfg, nil)
		if provider == nil || provider.ID != "openai-main" {
			t.Fatalf("provider = %+v", provider)
		}
	})

	t.Run("assignment picks provider and overrides model", func(t *testing.T) {
		provider := selectProvider(cfg, &testAssignment)
		if provider == nil || provider.ID != "anthropic-backup" {
			t.Fatalf("provider = %+v", provider)
		}
		if provider.DefaultModel != "claude-haiku-4-5-20251001" {
			t.Errorf("model = %q", provider.DefaultModel)
		}
	})

	t.Run("disabled providers are skipped", func(t *testing.T) {
		disabled := testAIConfig()
		for i := range disabled.Providers {
			disabled.Providers[i].Enabled = false
		}
		if provider := selectProvider(disabled, nil); provider != nil {
			t.Fatalf("provider = %+v, want nil", provider)
		}
	})
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(testAIConfig()); err != nil {
		t.Fatalf("ValidateConfig: %v", err)
	}

	t.Run("no enabled provider", func(t *testing.T) {
		empty := config.AIConfig{}
		if err := ValidateConfig(empty); !errors.Is(err, ErrNoProvider) {
			t.Fatalf("err = %v, want ErrNoProvider", err)
		}
	})

	t.Run("enabled provider without credential", func(t *testing.T) {
		cfg := testAIConfig()
		cfg.Providers = cfg.Providers[:1]
		cfg.Providers[0].APIKey = "  "
		if err := ValidateConfig(cfg); !errors.Is(err, ErrNoProvider) {
			t.Fatalf("err = %v, want ErrNoProvider", err)
		}
	})
}

func testAIConfig() config.AIConfig {
	return config.AIConfig{
		Providers: []config.AIProvider{
			{
				ID:           "openai-main",
				Type:         "OpenAI",
				APIKey:       "sk-test",
				DefaultModel: "gpt-4o-mini",
				Enabled:      true,
			},
			{
				ID:           "anthropic-backup",
				Type:         "Anthropic",
				APIKey:       "sk-ant-test",
				DefaultModel: "claude-sonnet-4-20250514",
				Enabled:      true,
			},
		},
	}
}

var testAssignment = config.AIModelAssignment{
	ProviderID: "anthropic-backup",
	Model:      "claude-haiku-4-5-20251001",
}
