package config

import (
	"os"

	"sigs.k8s.io/yaml"

	"github.com/prosecheck/prosecheck/internal/buffer"
)

// Config holds the checker settings, plus per-org and per-repo overrides
// used in server mode, keyed "org" or "org/repo".
type Config struct {
	// Checkers is the base configuration, keyed by checker name.
	Checkers map[string]Checker `json:"checkers,omitempty"`
	// CustomRepoConfig overrides Checkers for an org or a repo.
	CustomRepoConfig map[string]map[string]Checker `json:"customRepoConfig,omitempty"`
}

// Checker is the user-overridable surface of a single checker: its word
// lists, report/tooltip text, visual style, and whether it runs at all.
type Checker struct {
	// Enable is whether to enable this checker, if false, checker will not run.
	Enable *bool `json:"enable,omitempty"`
	// Words is the weasel-word pattern list. Entries are regex fragments.
	Words []string `json:"words,omitempty"`
	// Verbs is the passive-voice to-be verb list.
	Verbs []string `json:"verbs,omitempty"`
	// Participles is the passive-voice past-participle list.
	Participles []string `json:"participles,omitempty"`
	// CaseSensitive overrides the default case folding of the checker.
	// Duplicate-word matching ignores it and always folds case.
	CaseSensitive *bool `json:"caseSensitive,omitempty"`
	// Tooltip is the text attached to inline annotations.
	Tooltip string `json:"tooltip,omitempty"`
	// Style is the visual style of inline annotations.
	Style buffer.Style `json:"style,omitempty"`
}

// NewConfig returns the config loaded from conf, or the defaults when conf
// is empty.
func NewConfig(conf string) (Config, error) {
	c := Config{}
	if conf != "" {
		f, err := os.ReadFile(conf)
		if err != nil {
			return c, err
		}
		if err = yaml.Unmarshal(f, &c); err != nil {
			return c, err
		}
	}

	if c.Checkers == nil {
		c.Checkers = map[string]Checker{}
	}

	defaultEnable := true
	for name, v := range c.Checkers {
		if v.Enable == nil {
			v.Enable = &defaultEnable
			c.Checkers[name] = v
		}
	}

	return c, nil
}

// Get returns the effective config for the named checker on org/repo.
// Repo-level overrides win over org-level, which win over the base config.
func (c Config) Get(org, repo, name string) Checker {
	if repoConfig, ok := c.CustomRepoConfig[org+"/"+repo]; ok {
		if v, ok := repoConfig[name]; ok {
			return v
		}
	}

	if orgConfig, ok := c.CustomRepoConfig[org]; ok {
		if v, ok := orgConfig[name]; ok {
			return v
		}
	}

	return c.Checkers[name]
}

// Enabled reports whether cfg enables its checker; nil means enabled.
func (cfg Checker) Enabled() bool {
	return cfg.Enable == nil || *cfg.Enable
}
