package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/readmefeed/pkg/config"
	"github.com/matzehuels/readmefeed/pkg/sources"
)

func TestRegistryHasEveryKind(t *testing.T) {
	reg := Registry()
	require.Len(t, reg.Kinds(), len(All))
	for _, k := range All {
		assert.NotEmpty(t, k.Title, k.Name)
		assert.NotEmpty(t, k.Description, k.Name)
		assert.NotNil(t, k.New, k.Name)
	}
}

func TestDefaultRegionsResolve(t *testing.T) {
	reg := Registry()
	env := sources.Env{Config: config.Default()}
	for _, r := range config.DefaultRegions() {
		src, err := reg.New(env, r.Kind(), r.Params)
		require.NoError(t, err, r.Name)
		assert.Equal(t, r.Kind(), src.Kind(), r.Name)
	}
}
