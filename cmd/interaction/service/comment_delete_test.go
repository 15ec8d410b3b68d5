package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectDeleteBranch(t *testing.T) {
	cases := []struct {
		name           string
		isVideoOwner   bool
		hasReplies     bool
		isCommentOwner bool
		want           deleteBranch
	}{
		{"video owner cascades regardless of replies", true, true, false, branchHardCascade},
		{"video owner cascades leaf comments too", true, false, false, branchHardCascade},
		{"video owner deleting own comment still cascades", true, true, true, branchHardCascade},
		{"comment owner with replies soft deletes", false, true, true, branchSoft},
		{"comment owner without replies hard deletes", false, false, true, branchHardSingle},
		{"stranger is rejected", false, false, false, branchForbidden},
		{"stranger is rejected even with replies", false, true, false, branchForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := selectDeleteBranch(tc.isVideoOwner, tc.hasReplies, tc.isCommentOwner)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateCommentContent(t *testing.T) {
	service := &CommentService{}

	t.Run("rejects empty content", func(t *testing.T) {
		assert.Error(t, service.validateCommentContent(""))
		assert.Error(t, service.validateCommentContent("   "))
	})

	t.Run("accepts normal content", func(t *testing.T) {
		assert.NoError(t, service.validateCommentContent("nice video"))
	})

	t.Run("limit counts runes not bytes", func(t *testing.T) {
		long := make([]rune, 501)
		for i := range long {
			long[i] = '语'
		}
		assert.Error(t, service.validateCommentContent(string(long)))
		assert.NoError(t, service.validateCommentContent(string(long[:500])))
	})
}
