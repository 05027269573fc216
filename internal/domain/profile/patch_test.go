package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPatch_SetIfPresent(t *testing.T) {
	patch := BuildPatch(Input{
		Status:  "Developer",
		Company: "Acme",
	})

	assert.NotNil(t, patch.Status)
	assert.Equal(t, "Developer", *patch.Status)
	assert.NotNil(t, patch.Company)
	assert.Equal(t, "Acme", *patch.Company)

	// Absent fields stay nil so the stored values survive the merge.
	assert.Nil(t, patch.Website)
	assert.Nil(t, patch.Location)
	assert.Nil(t, patch.Bio)
	assert.Nil(t, patch.GithubUsername)
	assert.Nil(t, patch.Skills)
}

func TestBuildPatch_EmptyInput(t *testing.T) {
	patch := BuildPatch(Input{})

	assert.Nil(t, patch.Company)
	assert.Nil(t, patch.Status)
	assert.Nil(t, patch.Skills)
	assert.Nil(t, patch.Social.Youtube)
	assert.Nil(t, patch.Social.Twitter)
	assert.Nil(t, patch.Social.Facebook)
	assert.Nil(t, patch.Social.Linkedin)
	assert.Nil(t, patch.Social.Instagram)
}

func TestBuildPatch_SocialNesting(t *testing.T) {
	patch := BuildPatch(Input{
		Twitter:  "https://twitter.com/dev",
		Linkedin: "https://linkedin.com/in/dev",
	})

	assert.NotNil(t, patch.Social.Twitter)
	assert.Equal(t, "https://twitter.com/dev", *patch.Social.Twitter)
	assert.NotNil(t, patch.Social.Linkedin)
	assert.Nil(t, patch.Social.Youtube)
	assert.Nil(t, patch.Social.Facebook)
	assert.Nil(t, patch.Social.Instagram)
}

func TestSplitSkills_TrimsAndKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"node", "React", "express"}, SplitSkills("node, React , express"))
}

func TestSplitSkills_SingleEntry(t *testing.T) {
	assert.Equal(t, []string{"go"}, SplitSkills("go"))
}

func TestBuildPatch_SkillsViaInput(t *testing.T) {
	patch := BuildPatch(Input{Skills: "go,rust"})
	assert.Equal(t, []string{"go", "rust"}, patch.Skills)
}
