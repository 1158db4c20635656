package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/mtrack/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGoal_Allocate(t *testing.T) {
	tests := []struct {
		name      string
		allocated int64
		delta     int64
		want      int64
	}{
		{name: "adds a positive delta", allocated: 200, delta: 300, want: 500},
		{name: "releases part of an allocation", allocated: 200, delta: -50, want: 150},
		{name: "clamps at zero", allocated: 200, delta: -1000, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := domain.Goal{AllocatedAmount: decimal.NewFromInt(tt.allocated)}
			g.Allocate(decimal.NewFromInt(tt.delta))
			assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(tt.want)), "got %s", g.AllocatedAmount)
		})
	}
}

func TestGoal_CompleteIsOneWay(t *testing.T) {
	g := domain.NewGoal("g1", domain.GoalDraft{Name: "Laptop", TargetAmount: decimal.NewFromInt(1500), Deadline: "2024-12-31"}, time.Now())
	assert.Equal(t, domain.GoalActive, g.Status)

	assert.True(t, g.Complete())
	assert.Equal(t, domain.GoalCompleted, g.Status)

	assert.False(t, g.Complete())
	assert.Equal(t, domain.GoalCompleted, g.Status)
}

func TestGoalUpdate_ApplyTo(t *testing.T) {
	g := domain.Goal{
		Name:            "Laptop",
		TargetAmount:    decimal.NewFromInt(1500),
		Deadline:        "2024-12-31",
		AllocatedAmount: decimal.NewFromInt(300),
		Status:          domain.GoalActive,
	}
	name := "Gaming laptop"
	target := decimal.NewFromInt(2000)

	domain.GoalUpdate{Name: &name, TargetAmount: &target}.ApplyTo(&g)

	assert.Equal(t, "Gaming laptop", g.Name)
	assert.True(t, g.TargetAmount.Equal(target))
	assert.Equal(t, "2024-12-31", g.Deadline)
	assert.True(t, g.AllocatedAmount.Equal(decimal.NewFromInt(300)))
	assert.True(t, g.Remaining().Equal(decimal.NewFromInt(1700)))
}
