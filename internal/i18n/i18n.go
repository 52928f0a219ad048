package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[error_missing_api_key]
	other = "Gemini API key is not configured. Set GEMINI_API_KEY"

	[error_missing_token]
	other = "GitHub token is not configured. Set GITHUB_TOKEN"

	[error_missing_repo]
	other = "No target repository. Pass owner and repo or set REPO_OWNER and REPO_NAME"

	[error_generating_content]
	other = "Error generating content: {{.Error}}"

	[error_empty_response]
	other = "The model returned no content"

	[error_fetching_repository]
	other = "Error fetching repository {{.Repo}}: {{.Error}}"

	[error_creating_issue]
	other = "Error creating issue in {{.Repo}}: {{.Error}}"

	[error_fetching_pr]
	other = "Error fetching pull request #{{.Number}}: {{.Error}}"

	[error_creating_review]
	other = "Error creating review on pull request #{{.Number}}: {{.Error}}"

	[issue_footer]
	other = "Category: {{.Category}}\nPriority: Medium"

	[review_header]
	other = "Pull Request Review"

	[issues_filed]
	one = "{{.Count}} issue filed"
	other = "{{.Count}} issues filed"
	`
