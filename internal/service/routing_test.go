package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/complaint-service/internal/domain"
)

func TestRoutingResolver(t *testing.T) {
	departments := &fakeDepartmentRepo{departments: map[int64]domain.Department{
		10: {ID: 10, Name: "Sanitation Dept", CategoryID: int64Ptr(1)},
		11: {ID: 11, Name: "Water Board", CategoryID: int64Ptr(4)},
	}}
	resolver := NewRoutingResolver(departments)

	t.Run("routed category", func(t *testing.T) {
		deptID, err := resolver.Resolve(context.Background(), 1)
		require.NoError(t, err)
		require.NotNil(t, deptID)
		assert.Equal(t, int64(10), *deptID)
	})

	t.Run("category without department", func(t *testing.T) {
		deptID, err := resolver.Resolve(context.Background(), 999)
		require.NoError(t, err)
		assert.Nil(t, deptID)
	})
}
