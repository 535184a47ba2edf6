package llm

// ModelTier represents the capability/cost tier of a model
type ModelTier string

// Model tiers from cheapest to most capable.
const (
	TierLite     ModelTier = "lite"
	TierStandard ModelTier = "standard"
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Supported providers.
const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// TaskKind names one structured-generation task the pipeline performs. Every
// capability call is one of these; the kind selects the prompt, the model
// tier, and the output schema.
type TaskKind string

// Generation task kinds.
const (
	TaskJobAnalysis          TaskKind = "job_analysis"
	TaskExperienceSelection  TaskKind = "experience_selection"
	TaskProjectSelection     TaskKind = "project_selection"
	TaskSkillsSelection      TaskKind = "skills_selection"
	TaskPublicationSelection TaskKind = "publication_selection"
	TaskWorkSampleSelection  TaskKind = "work_sample_selection"
	TaskResumeDraft          TaskKind = "resume_draft"
	TaskDraftValidation      TaskKind = "draft_validation"
	TaskStyleEdit            TaskKind = "style_edit"
	TaskFinalQA              TaskKind = "final_qa"
)

// defaultTaskTiers assigns each task the cheapest tier that handles it well.
// The five selection tasks run in parallel, so they get the lite tier;
// drafting is the hardest single call and gets the advanced tier.
var defaultTaskTiers = map[TaskKind]ModelTier{
	TaskJobAnalysis:          TierStandard,
	TaskExperienceSelection:  TierLite,
	TaskProjectSelection:     TierLite,
	TaskSkillsSelection:      TierLite,
	TaskPublicationSelection: TierLite,
	TaskWorkSampleSelection:  TierLite,
	TaskResumeDraft:          TierAdvanced,
	TaskDraftValidation:      TierStandard,
	TaskStyleEdit:            TierStandard,
	TaskFinalQA:              TierStandard,
}

// Config holds LLM provider and generation configuration
type Config struct {
	Provider  Provider
	Models    map[ModelTier]string
	TaskTiers map[TaskKind]ModelTier

	// Temperature for all structured generation. Low keeps output stable.
	Temperature float32
	// MaxAttempts bounds retries for one structured call.
	MaxAttempts int
	// ValidateOutputs enables JSON Schema checks on task outputs.
	ValidateOutputs bool
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns default Gemini model configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		TaskTiers:       defaultTaskTiers,
		Temperature:     0.1,
		MaxAttempts:     3,
		ValidateOutputs: true,
	}
}

// GetModel returns the model name for a tier, falling back through cheaper
// tiers when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok && model != "" {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok && model != "" {
		return model
	}
	if model, ok := c.Models[TierLite]; ok && model != "" {
		return model
	}
	return ""
}

// TierFor returns the model tier configured for a task kind.
func (c *Config) TierFor(task TaskKind) ModelTier {
	if tier, ok := c.TaskTiers[task]; ok {
		return tier
	}
	return TierStandard
}

// WithModel returns a copy of the config with one tier's model replaced.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	models := make(map[ModelTier]string, len(c.Models))
	for k, v := range c.Models {
		models[k] = v
	}
	models[tier] = model

	out := *c
	out.Models = models
	return &out
}
