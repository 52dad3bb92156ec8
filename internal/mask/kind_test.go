package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()

	assert.Equal(t, []Kind{
		KindComponents,
		KindDflFull,
		KindFacehull,
		KindNone,
		KindVgg300,
		KindVgg500,
		KindUnet256,
	}, kinds)

	assert.Equal(t, []string{
		"components", "dfl_full", "facehull", "none", "vgg_300", "vgg_500", "unet_256",
	}, KindNames())
}

func TestDefault(t *testing.T) {
	assert.Equal(t, KindDflFull, Default())
}

func TestParse(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		k, err := Parse("facehull")

		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, KindFacehull, k)
	})

	t.Run("Normalized", func(t *testing.T) {
		k, err := Parse("  VGG_300 ")

		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, KindVgg300, k)
	})

	t.Run("Empty", func(t *testing.T) {
		k, err := Parse("")

		if err != nil {
			t.Fatal(err)
		}

		assert.Equal(t, Default(), k)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Parse("bogus")

		assert.Error(t, err)
	})
}

func TestKindGroups(t *testing.T) {
	for _, k := range Kinds() {
		assert.False(t, k.IsHull() && k.IsLearned(), "kind %s", k)
	}

	assert.True(t, KindComponents.IsHull())
	assert.True(t, KindDflFull.IsHull())
	assert.True(t, KindFacehull.IsHull())
	assert.False(t, KindNone.IsHull())
	assert.False(t, KindNone.IsLearned())
	assert.True(t, KindVgg300.IsLearned())
	assert.True(t, KindVgg500.IsLearned())
	assert.True(t, KindUnet256.IsLearned())
}

func TestKindModelName(t *testing.T) {
	assert.Equal(t, "Nirkin_300_softmax_v1", KindVgg300.ModelName())
	assert.Equal(t, "Nirkin_500_softmax_v1", KindVgg500.ModelName())
	assert.Equal(t, "DFL_256_sigmoid_v1", KindUnet256.ModelName())
	assert.Equal(t, "", KindFacehull.ModelName())
	assert.Equal(t, "", KindNone.ModelName())
}
