package domain

import (
	"testing"

	m "github.com/mouse-blink/errfold/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_SingleNestedBlock(t *testing.T) {
	lines := []string{
		"function f(x) {",
		"  if (x == null) {",
		"    return false;",
		"  }",
		"  return true;",
		"}",
	}

	blocks := Segment(lines)

	require.Len(t, blocks, 2)

	// Inner block closes first.
	assert.Equal(t, m.CodeBlock{StartLine: 2, EndLine: 2, IndentLevel: 4}, blocks[0])
	assert.Equal(t, m.CodeBlock{StartLine: 1, EndLine: 4, IndentLevel: 2}, blocks[1])
}

func TestSegment_Deterministic(t *testing.T) {
	lines := []string{
		"def load(path):",
		"    data = read(path)",
		"    if data is None:",
		"        return None",
		"    return data",
		"",
		"def save(path):",
		"    write(path)",
	}

	first := Segment(lines)
	second := Segment(lines)

	assert.Equal(t, first, second)
}

func TestSegment_MultiLevelJumpIsSinglePush(t *testing.T) {
	// Indentation jumps from 0 to 8 in one step; that is one block, not two.
	lines := []string{
		"start",
		"        deep_a",
		"        deep_b",
		"end",
	}

	blocks := Segment(lines)

	require.Len(t, blocks, 1)
	assert.Equal(t, m.CodeBlock{StartLine: 1, EndLine: 2, IndentLevel: 8}, blocks[0])
}

func TestSegment_EmptyStackPopIsNoOp(t *testing.T) {
	// One start marker is pushed but indentation decreases twice; the
	// second pop hits an empty stack and must emit nothing, not fault.
	lines := []string{
		"        orphan",
		"    less",
		"none",
	}

	blocks := Segment(lines)

	require.Len(t, blocks, 1)
	assert.Equal(t, m.CodeBlock{StartLine: 0, EndLine: 0, IndentLevel: 8}, blocks[0])
}

func TestSegment_FlatInputProducesNoBlocks(t *testing.T) {
	lines := []string{
		"a();",
		"b();",
		"",
		"// comment",
		"c();",
	}

	assert.Empty(t, Segment(lines))
}

func TestSegment_TrailingOpenBlockNotEmitted(t *testing.T) {
	lines := []string{
		"if (x) {",
		"    work();",
		"    more();",
	}

	blocks := Segment(lines)

	assert.Empty(t, blocks)
}

func TestSegment_SkipsBlankCommentAndPreprocessorLines(t *testing.T) {
	lines := []string{
		"#include <stdio.h>",
		"int main(void) {",
		"    // local state",
		"",
		"    int rc = setup();",
		"    if (rc < 0) {",
		"        goto fail;",
		"    }",
		"    return 0;",
		"}",
	}

	blocks := Segment(lines)

	require.Len(t, blocks, 2)
	assert.Equal(t, m.CodeBlock{StartLine: 6, EndLine: 6, IndentLevel: 8}, blocks[0])
	assert.Equal(t, m.CodeBlock{StartLine: 4, EndLine: 8, IndentLevel: 4}, blocks[1])
}

func TestSegment_TabsCountAsSingleCharacters(t *testing.T) {
	lines := []string{
		"func main() {",
		"\tif err != nil {",
		"\t\tpanic(err)",
		"\t}",
		"}",
	}

	blocks := Segment(lines)

	require.Len(t, blocks, 2)
	assert.Equal(t, 2, blocks[0].IndentLevel)
	assert.Equal(t, 1, blocks[1].IndentLevel)
}

func TestSegment_BlocksRespectStackDiscipline(t *testing.T) {
	lines := []string{
		"a {",
		"  b {",
		"    c;",
		"  }",
		"  d;",
		"}",
		"e {",
		"  f;",
		"}",
	}

	blocks := Segment(lines)

	for _, block := range blocks {
		assert.LessOrEqual(t, block.StartLine, block.EndLine)
	}

	// Any two blocks are either disjoint or properly nested.
	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			a, b := blocks[i], blocks[j]
			disjoint := a.EndLine < b.StartLine || b.EndLine < a.StartLine
			nested := (a.StartLine >= b.StartLine && a.EndLine <= b.EndLine) ||
				(b.StartLine >= a.StartLine && b.EndLine <= a.EndLine)
			assert.True(t, disjoint || nested, "blocks %v and %v overlap improperly", a, b)
		}
	}
}
