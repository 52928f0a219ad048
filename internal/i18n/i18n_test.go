package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("builds with the embedded defaults", func(t *testing.T) {
		trans, err := NewTranslations("en")
		require.NoError(t, err)
		require.NotNil(t, trans)

		msg := trans.GetMessage("error_empty_response", 0, nil)
		assert.Equal(t, "The model returned no content", msg)
	})

	t.Run("loads locale files next to the binary", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "locales"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "active.es.toml"), []byte(`
[error_empty_response]
other = "El modelo no devolvió contenido"
`), 0o644))
		t.Chdir(dir)

		trans, err := NewTranslations("es")
		require.NoError(t, err)
		assert.Equal(t, "El modelo no devolvió contenido", trans.GetMessage("error_empty_response", 0, nil))
	})

	t.Run("invalid locale file fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "locales"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "locales", "active.es.toml"), []byte(`
[broken
not toml`), 0o644))
		t.Chdir(dir)

		_, err := NewTranslations("es")
		assert.Error(t, err)
	})
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	t.Run("known language", func(t *testing.T) {
		assert.NoError(t, trans.SetLanguage("en"))
	})

	t.Run("unsupported language", func(t *testing.T) {
		assert.Error(t, trans.SetLanguage("fr"))
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en")
	require.NoError(t, err)

	t.Run("template data is interpolated", func(t *testing.T) {
		msg := trans.GetMessage("error_fetching_repository", 0, map[string]interface{}{
			"Repo":  "tensorus/tensorus",
			"Error": "404",
		})
		assert.Equal(t, "Error fetching repository tensorus/tensorus: 404", msg)
	})

	t.Run("plural forms", func(t *testing.T) {
		one := trans.GetMessage("issues_filed", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("issues_filed", 3, map[string]interface{}{"Count": 3})
		assert.Equal(t, "1 issue filed", one)
		assert.Equal(t, "3 issues filed", many)
	})

	t.Run("issue footer", func(t *testing.T) {
		msg := trans.GetMessage("issue_footer", 0, map[string]interface{}{"Category": "Code Quality"})
		assert.Equal(t, "Category: Code Quality\nPriority: Medium", msg)
	})

	t.Run("missing message id", func(t *testing.T) {
		msg := trans.GetMessage("does_not_exist", 0, nil)
		assert.Equal(t, "Translation missing: does_not_exist", msg)
	})
}
