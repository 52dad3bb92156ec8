package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facemask/facemask/internal/form"
)

func TestNewMaskFile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		m := NewMaskFile("faces/00001.png", "faces/00001.dfl_full.mask.png", "dfl_full", 1)

		require.NotNil(t, m)
		assert.Equal(t, "dfl_full", m.MaskKind)
		assert.Equal(t, 1, m.MaskChannels)
		assert.Equal(t, "00001.png", m.BaseName())
		assert.True(t, m.Unsaved())
	})
	t.Run("EmptyFileName", func(t *testing.T) {
		assert.Nil(t, NewMaskFile("", "", "dfl_full", 1))
	})
}

func TestMaskFile_SetResult(t *testing.T) {
	t.Run("Reviewed", func(t *testing.T) {
		m := NewMaskFile("faces/00002.png", "", "components", 1).SetResult(256, 256, 1, 0.01)

		assert.Equal(t, 256, m.MaskWidth)
		assert.Equal(t, 1, m.FaceCount)
		assert.True(t, m.MaskReview)
	})
	t.Run("NotReviewed", func(t *testing.T) {
		m := NewMaskFile("faces/00002.png", "", "components", 1).SetResult(256, 256, 1, 0.31)

		assert.InEpsilon(t, 0.31, m.Coverage, 0.001)
		assert.False(t, m.MaskReview)
	})
}

func TestMaskFile_Create(t *testing.T) {
	m := NewMaskFile("faces/00010.png", "faces/00010.facehull.mask.png", "facehull", 1)

	require.NoError(t, m.Create())
	assert.NotEmpty(t, m.MaskUID)

	found := FindMaskFileByName("faces/00010.png", "facehull")

	require.NotNil(t, found)
	assert.Equal(t, m.MaskUID, found.MaskUID)

	assert.Nil(t, FindMaskFileByName("faces/00010.png", "components"))
	assert.Nil(t, FindMaskFileByName("", "facehull"))
}

func TestFindMaskFile(t *testing.T) {
	m := NewMaskFile("faces/00011.png", "", "none", 1)
	require.NoError(t, m.Create())

	found := FindMaskFile(m.MaskUID)

	require.NotNil(t, found)
	assert.Equal(t, "faces/00011.png", found.FileName)

	assert.Nil(t, FindMaskFile(""))
	assert.Nil(t, FindMaskFile("xxx"))
}

func TestCreateMaskFileIfNotExists(t *testing.T) {
	m := NewMaskFile("faces/00012.png", "", "dfl_full", 1)

	first, err := CreateMaskFileIfNotExists(m)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := CreateMaskFileIfNotExists(NewMaskFile("faces/00012.png", "", "dfl_full", 1))
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.MaskUID, second.MaskUID)
}

func TestMaskFile_SaveForm(t *testing.T) {
	m := NewMaskFile("faces/00013.png", "", "facehull", 1)
	require.NoError(t, m.Create())

	changed, err := m.SaveForm(form.MaskFile{MaskInvalid: true})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, m.MaskInvalid)

	changed, err = m.SaveForm(form.MaskFile{MaskInvalid: true})
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMaskFile_Stale(t *testing.T) {
	m := NewMaskFile("faces/00014.png", "", "dfl_full", 1)
	m.FileModTime = 1000

	assert.False(t, m.Stale("dfl_full", 1, 1000))
	assert.True(t, m.Stale("dfl_full", 1, 2000))
	assert.True(t, m.Stale("components", 1, 1000))
	assert.True(t, m.Stale("dfl_full", 3, 1000))

	m.MaskInvalid = true
	assert.True(t, m.Stale("dfl_full", 1, 1000))
}

func TestMaskFile_Invalidate(t *testing.T) {
	m := NewMaskFile("faces/00015.png", "", "dfl_full", 1)
	require.NoError(t, m.Create())

	require.NoError(t, m.Invalidate())
	assert.True(t, m.MaskInvalid)

	found := FindMaskFile(m.MaskUID)
	require.NotNil(t, found)
	assert.True(t, found.MaskInvalid)

	// Second call is a no-op.
	require.NoError(t, m.Invalidate())
}

func TestMaskFile_MarshalJSON(t *testing.T) {
	m := NewMaskFile("faces/00016.png", "", "vgg_300", 1).SetResult(300, 300, 2, 0.42)
	m.MaskUID = "test-uid"

	data, err := m.MarshalJSON()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"UID":"test-uid"`)
	assert.Contains(t, s, `"Kind":"vgg_300"`)
	assert.Contains(t, s, `"Faces":2`)
}

func TestAllMaskFiles(t *testing.T) {
	require.NoError(t, ResetMaskFiles())

	require.NoError(t, NewMaskFile("faces/00020.png", "", "dfl_full", 1).Create())
	require.NoError(t, NewMaskFile("faces/00021.png", "", "dfl_full", 1).Create())

	result, err := AllMaskFiles()
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 2, CountMaskFiles())

	require.NoError(t, ResetMaskFiles())
	assert.Equal(t, 0, CountMaskFiles())
}
