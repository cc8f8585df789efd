package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply_SingleRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		in   string
		want string
	}{
		{"prefix", Rule{Op: OpAddPrefix, A: "NEW_"}, "report.txt", "NEW_report.txt"},
		{"suffix before ext", Rule{Op: OpAddSuffix, A: "_v2"}, "report.txt", "report_v2.txt"},
		{"suffix multi-dot ext", Rule{Op: OpAddSuffix, A: "_1"}, "archive.tar.gz", "archive.tar_1.gz"},
		{"suffix no ext", Rule{Op: OpAddSuffix, A: "_v2"}, "README", "README_v2"},
		{"suffix dotfile", Rule{Op: OpAddSuffix, A: "_old"}, ".bashrc", ".bashrc_old"},
		{"replace full name", Rule{Op: OpReplaceText, A: "old", B: "new"}, "file_old.txt", "file_new.txt"},
		{"replace covers extension", Rule{Op: OpReplaceText, A: "txt", B: "bak"}, "txt.txt", "bak.bak"},
		{"replace absent find", Rule{Op: OpReplaceText, A: "zzz", B: "x"}, "report.txt", "report.txt"},
		{"remove text", Rule{Op: OpRemoveText, A: "backup_"}, "backup_photo.jpg", "photo.jpg"},
		{"lowercase full name", Rule{Op: OpLowercase}, "Photo 1.JPG", "photo 1.jpg"},
		{"uppercase full name", Rule{Op: OpUppercase}, "report.txt", "REPORT.TXT"},
		{"camel case", Rule{Op: OpCamelCase, A: ""}, "my file_name-v2.txt", "MyFileNameV2.txt"},
		{"camel keeps extension", Rule{Op: OpCamelCase}, "annual report.PDF", "AnnualReport.PDF"},
		{"remove numbers body only", Rule{Op: OpRemoveNumbers}, "track01 take2.mp3", "track take.mp3"},
		{"keep numbers only", Rule{Op: OpKeepNumbersOnly}, "IMG_2024 shoot 01.jpg", "202401.jpg"},
		{"keep numbers only no digits", Rule{Op: OpKeepNumbersOnly}, "notes.txt", ".txt"},
		{"spaces to underscores", Rule{Op: OpSpacesToUnderscores}, "my  report v1.txt", "my_report_v1.txt"},
		{"spaces to hyphens", Rule{Op: OpSpacesToHyphens}, "my\treport.txt", "my-report.txt"},
		{"collapse spaces", Rule{Op: OpCollapseSpaces}, "a   b  c.txt", "a b c.txt"},
		{"remove special chars", Rule{Op: OpRemoveSpecialChars}, "ph@to (1)!.jpg", "phto 1.jpg"},
		{"change extension", Rule{Op: OpChangeExtension, A: "bak"}, "report.txt", "report.bak"},
		{"change extension with dot", Rule{Op: OpChangeExtension, A: ".bak"}, "report.txt", "report.bak"},
		{"change extension to none", Rule{Op: OpChangeExtension, A: " "}, "report.txt", "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.rule, tt.in))
		})
	}
}

func TestApply_Deterministic(t *testing.T) {
	rule := Rule{Op: OpReplaceText, A: " ", B: "_"}
	first := Apply(rule, "Photo 1.JPG")
	second := Apply(rule, "Photo 1.JPG")
	assert.Equal(t, first, second)
}

func TestApply_CaseFoldIdempotent(t *testing.T) {
	for _, op := range []Op{OpLowercase, OpUppercase} {
		once := Apply(Rule{Op: op}, "Mixed Case NAME.TxT")
		twice := Apply(Rule{Op: op}, once)
		assert.Equal(t, once, twice, "%s must be idempotent", op)
	}
}

func TestApplyAll_ComposesInOrder(t *testing.T) {
	rules := []Rule{
		{Op: OpLowercase},
		{Op: OpSpacesToUnderscores},
	}
	assert.Equal(t, "photo_1.jpg", ApplyAll(rules, "Photo 1.JPG"))
}

func TestApplyAll_EmptyPipelineIsIdentity(t *testing.T) {
	assert.Equal(t, "Photo 1.JPG", ApplyAll(nil, "Photo 1.JPG"))
}
