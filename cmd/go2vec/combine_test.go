package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danieldk/go2vec/v3"
	"github.com/danieldk/go2vec/v3/internal/config"
	"github.com/danieldk/go2vec/v3/internal/explore"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPrompter struct {
	answers []string
	labels  []string
}

func (p *stubPrompter) Prompt(label string) (string, error) {
	p.labels = append(p.labels, label)
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func testExplorer(t *testing.T, prompter explore.Prompter, out *bytes.Buffer) *explore.Explorer {
	embeds := go2vec.NewEmbeddings(2)
	require.NoError(t, embeds.Put("a", []float32{1, 0}))
	require.NoError(t, embeds.Put("b", []float32{0, 1}))
	require.NoError(t, embeds.Put("c", []float32{1, 1}))

	return &explore.Explorer{
		Table:    embeds,
		Prompter: prompter,
		Out:      out,
		Logger:   zap.NewNop(),
	}
}

func combineFlags(t *testing.T, args ...string) *pflag.FlagSet {
	flags := pflag.NewFlagSet("combine", pflag.ContinueOnError)
	addRootFlags(flags)
	addCombineFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestCombineArgs(t *testing.T) {
	valid := [][]string{
		{},
		{"honor"},
		{"honor", "odium"},
		{"honor", "odium", "preservation", "ruin"},
	}
	for _, args := range valid {
		if err := combineCmd.Args(combineCmd, args); err != nil {
			t.Errorf("Args %v should be accepted, got: %s", args, err)
		}
	}

	if err := combineCmd.Args(combineCmd, []string{"honor", "odium", "preservation"}); err == nil {
		t.Error("An odd number of words beyond one pair should be rejected")
	}
}

func TestApplyCombineFlags(t *testing.T) {
	cfg := config.Default()
	flags := combineFlags(t, "--model", "vectors.bin", "--method", "add", "--topn", "3", "--normalize")

	require.NoError(t, applyCombineFlags(flags, cfg))
	assert.Equal(t, "vectors.bin", cfg.Model.Path)
	assert.Equal(t, "add", cfg.Query.Method)
	assert.Equal(t, 3, cfg.Query.TopN)
	assert.True(t, cfg.Model.Normalize)
}

func TestApplyCombineFlagsKeepsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Model.Path = "/data/vectors.bin"
	cfg.Query.TopN = 4

	require.NoError(t, applyCombineFlags(combineFlags(t), cfg))
	assert.Equal(t, "/data/vectors.bin", cfg.Model.Path)
	assert.Equal(t, "average", cfg.Query.Method)
	assert.Equal(t, 4, cfg.Query.TopN)
	assert.False(t, cfg.Model.Normalize)
}

func TestApplyCombineFlagsRejectsTopN(t *testing.T) {
	for _, arg := range []string{"--topn=0", "--topn=-2"} {
		err := applyCombineFlags(combineFlags(t, arg), config.Default())
		assert.Error(t, err, arg)
	}

	cfg := config.Default()
	cfg.Query.TopN = -1
	assert.Error(t, applyCombineFlags(combineFlags(t), cfg))
}

func TestApplyRootFlags(t *testing.T) {
	cfg := config.Default()
	applyRootFlags(combineFlags(t), cfg)
	assert.True(t, cfg.Model.BinaryOrDefault())
	assert.False(t, cfg.Debug)

	applyRootFlags(combineFlags(t, "--text", "--debug"), cfg)
	assert.False(t, cfg.Model.BinaryOrDefault())
	assert.True(t, cfg.Debug)
}

func TestRunPairs(t *testing.T) {
	var out bytes.Buffer
	prompter := &stubPrompter{}

	require.NoError(t, runPairs(testExplorer(t, prompter, &out), []string{"a", "b", "b", "c"}))
	assert.Empty(t, prompter.labels)
	assert.Equal(t, 2, strings.Count(out.String(), "Words similar to the composite vector:"))
}

func TestRunPairsPromptsForMissingWord(t *testing.T) {
	var out bytes.Buffer
	prompter := &stubPrompter{answers: []string{"b"}}

	require.NoError(t, runPairs(testExplorer(t, prompter, &out), []string{"a"}))
	assert.Equal(t, []string{"Enter the second word: "}, prompter.labels)
	assert.Contains(t, out.String(), "c: 1.0000\n")
}
