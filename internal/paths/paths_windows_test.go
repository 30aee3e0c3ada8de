package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qtsetup/internal/model"
)

func TestWindowsLiteralLayout(t *testing.T) {
	assert.Equal(t, `C:\App`, ProcessDirToRoot(model.Some(`C:\App\bin\exec`)).OrElse(""))
	assert.Equal(t, `C:\App`, ProcessDirToRoot(model.Some(`C:\App\bin\exec\`)).OrElse(""))
	assert.Equal(t, `C:\App\Settings\Scripts\Indicators`,
		RootToCustomIndicatorsDir(model.Some(`C:\App`)).OrElse(""))
}
