package registrar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sdkcompat/internal/core/domain"
	"go.trai.ch/sdkcompat/internal/engine/registrar"
)

func TestRegister_Once(t *testing.T) {
	schema := domain.NewAttributesSchema()
	r := registrar.New(schema)

	assert.True(t, r.Register())
	assert.False(t, r.Register())

	st, ok := schema.Strategy(domain.CompileSdkAttribute)
	require.True(t, ok)
	assert.IsType(t, domain.OrderedIntCompatibility{}, st.Compatibility)
	assert.IsType(t, domain.PickLastInt{}, st.Disambiguation)
}

func TestStamp(t *testing.T) {
	p := &domain.Project{
		Name: "app",
		Configurations: []*domain.Configuration{
			{Name: "releaseRuntimeClasspath", Attributes: domain.Attributes{domain.UsageAttribute: domain.UsageJavaRuntime}},
			{Name: "implementation"},
		},
	}

	registrar.New(domain.NewAttributesSchema()).Stamp(p, 31)

	for _, c := range p.Configurations {
		assert.Equal(t, "31", c.Attributes[domain.CompileSdkAttribute], c.Name)
	}
	assert.Equal(t, domain.UsageJavaRuntime, p.Configurations[0].Attributes[domain.UsageAttribute])
}
