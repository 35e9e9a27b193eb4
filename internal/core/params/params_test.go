package params

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// DefaultInstruction Tests
// =============================================================================

func TestDefaultInstruction_OverrideWins(t *testing.T) {
	got, err := DefaultInstruction("summarization", 100, "Be brief.")
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", got)
}

func TestDefaultInstruction_OverrideSkipsTaskValidation(t *testing.T) {
	got, err := DefaultInstruction("translation", 100, "Translate to French.")
	require.NoError(t, err)
	assert.Equal(t, "Translate to French.", got)
}

func TestDefaultInstruction_Tasks(t *testing.T) {
	tests := []struct {
		name   string
		task   string
		length int
		want   string
	}{
		{"summarization", "summarization", 50, "Summarize in less than 50 words."},
		{"summarization-mixed-case", "Summarization", 200, "Summarize in less than 200 words."},
		{"question-answer", "question_answer", 64, "Answer the question in less than 64 words."},
		{"question-answer-upper", "QUESTION_ANSWER", 1, "Answer the question in less than 1 words."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultInstruction(tt.task, tt.length, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultInstruction_UnsupportedTask(t *testing.T) {
	_, err := DefaultInstruction("classification", 50, "")
	require.Error(t, err)

	var taskErr *UnsupportedTaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, "classification", taskErr.Task)
}

// =============================================================================
// ResolveInstruction Tests
// =============================================================================

func TestResolveInstruction_ChatModelSuppresses(t *testing.T) {
	assert.Equal(t, "", ResolveInstruction("chat-bison@001", "Be terse"))
	assert.Equal(t, "", ResolveInstruction("LLAMA_2_7B_CHAT", "Be terse"))
}

func TestResolveInstruction_NonChatPassesThrough(t *testing.T) {
	assert.Equal(t, "Be terse", ResolveInstruction("BISON", "Be terse"))
	assert.Equal(t, "", ResolveInstruction("BISON", ""))
}

// =============================================================================
// Upload / Deploy Eligibility Tests
// =============================================================================

func TestShouldUploadModel(t *testing.T) {
	assert.True(t, ShouldUploadModel("BISON"))
	assert.False(t, ShouldUploadModel("T5_SMALL"))
	assert.False(t, ShouldUploadModel("bison")) // case-sensitive reference
}

func TestShouldDeployModel(t *testing.T) {
	tests := []struct {
		name   string
		deploy bool
		model  string
		want   bool
	}{
		{"intent-and-eligible", true, "BISON", true},
		{"no-intent", false, "BISON", false},
		{"intent-but-ineligible", true, "T5_XXL", false},
		{"neither", false, "GECKO", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldDeployModel(tt.deploy, tt.model))
		})
	}
}

// =============================================================================
// Defaults and Predicates Tests
// =============================================================================

func TestCandidateColumns(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, CandidateColumns([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"candidate_0", "candidate_1"}, CandidateColumns(nil))
	assert.Equal(t, []string{"candidate_0", "candidate_1"}, CandidateColumns([]string{}))
}

func TestValueExists(t *testing.T) {
	value := "x"
	empty := ""
	assert.True(t, ValueExists(&value))
	assert.False(t, ValueExists(&empty))
	assert.False(t, ValueExists(nil))
}

func TestJoinDelimited(t *testing.T) {
	tests := []struct {
		name      string
		items     []string
		delimiter string
		want      string
	}{
		{"default-comma", []string{"a", "b", "c"}, "", "a,b,c"},
		{"custom", []string{"a", "b"}, "|", "a|b"},
		{"single", []string{"a"}, ",", "a"},
		{"empty-sequence", nil, ",", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinDelimited(tt.items, tt.delimiter))
		})
	}
}

func TestSplitDataPaths(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantDir  string
		wantName string
	}{
		{"gcs-path", "gs://bucket/datasets/reviews", "gs://bucket/datasets", "reviews"},
		{"plain-path", "/data/tfds/summaries", "/data/tfds", "summaries"},
		{"no-separator", "reviews", "", "reviews"},
		{"trailing-separator", "gs://bucket/datasets/", "gs://bucket/datasets", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, name := SplitDataPaths(tt.in)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

// =============================================================================
// Upload Target Tests
// =============================================================================

func TestResolveUploadLocation(t *testing.T) {
	assert.Equal(t, "europe-west4", ResolveUploadLocation("europe-west4", "us-central1"))
	assert.Equal(t, "us-central1", ResolveUploadLocation("", "us-central1"))
}

func TestRegionalEndpoint(t *testing.T) {
	assert.Equal(t,
		"https://us-central1-aiplatform.googleapis.com/ui",
		RegionalEndpoint("us-central1"),
	)
}

func TestDisplayName_Override(t *testing.T) {
	assert.Equal(t, "my-model", DisplayName("BISON", "my-model"))
}

func TestDisplayName_DefaultFormat(t *testing.T) {
	// Time-dependent default: assert the shape, not the value.
	got := DisplayName("BISON", "")
	assert.Regexp(t, regexp.MustCompile(`^bison-\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}$`), got)
}
