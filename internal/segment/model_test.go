package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModels(t *testing.T) {
	assert.Len(t, Models, 3)

	m := Models["Nirkin_300_softmax_v1"]
	assert.Equal(t, 8, m.Release)
	assert.Equal(t, 300, m.Side)
	assert.Equal(t, FamilyNirkin, m.Family)

	m = Models["Nirkin_500_softmax_v1"]
	assert.Equal(t, 5, m.Release)
	assert.Equal(t, 500, m.Side)
	assert.Equal(t, FamilyNirkin, m.Family)

	m = Models["DFL_256_sigmoid_v1"]
	assert.Equal(t, 6, m.Release)
	assert.Equal(t, 256, m.Side)
	assert.Equal(t, FamilyDFL, m.Family)
}

func TestModelByName(t *testing.T) {
	m, err := ModelByName("DFL_256_sigmoid_v1")

	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "DFL_256_sigmoid_v1", m.Name)

	_, err = ModelByName("Unknown_Model_v9")
	assert.Error(t, err)
}

func TestModelNames(t *testing.T) {
	m := Models["DFL_256_sigmoid_v1"]

	assert.Equal(t, "DFL_256_sigmoid_v1.tflite", m.FileName())
	assert.Equal(t, "DFL_256_sigmoid_v1.zip", m.ZipName())
	assert.Equal(t, "DFL_256_sigmoid_v1", m.String())
}

func TestModelDownloadUrl(t *testing.T) {
	m := Models["Nirkin_500_softmax_v1"]

	assert.Equal(t,
		"https://example.com/models/v5/Nirkin_500_softmax_v1.zip",
		m.DownloadUrl("https://example.com/models"))

	assert.Equal(t,
		DefaultBaseUrl+"/v5/Nirkin_500_softmax_v1.zip",
		m.DownloadUrl(""))
}
