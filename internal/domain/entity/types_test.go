package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnemyType_String(t *testing.T) {
	tests := []struct {
		typ      EnemyType
		expected string
	}{
		{EnemyDrone, "Drone"},
		{EnemyStrafer, "Strafer"},
		{EnemyJinker, "Jinker"},
		{EnemyElite, "Elite"},
		{EnemyBoss, "Boss"},
		{EnemyType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}

func TestPayloadType_String(t *testing.T) {
	tests := []struct {
		typ      PayloadType
		expected string
	}{
		{PayloadStandard, "Standard"},
		{PayloadPiercing, "Piercing"},
		{PayloadChaining, "Chaining"},
		{PayloadArea, "Area"},
		{PayloadSpread, "Spread"},
		{PayloadDelayedBurst, "DelayedBurst"},
		{PayloadSpiral, "Spiral"},
		{PayloadGrid, "Grid"},
		{PayloadType(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.typ.String())
		})
	}
}
