package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	testCases := []struct {
		categoryID int
		expected   string
	}{
		{2612, "Mobile Phones"},
		{2614, "TVs"},
		{2615, "CPUs"},
		{2617, "Digital Cameras"},
		{2618, "Microwaves"},
		{2619, "Dishwashers"},
		{2620, "Washing Machines"},
		{2621, "Freezers"},
		{2622, "Fridge Freezers"},
		{2623, "Fridges"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, CategoryLabel(tc.categoryID))
		})
	}

	t.Run("Unmapped ids fall back to the unknown label", func(t *testing.T) {
		assert.Equal(t, UnknownCategory, CategoryLabel(0))
		assert.Equal(t, UnknownCategory, CategoryLabel(-1))
		assert.Equal(t, UnknownCategory, CategoryLabel(2613))
		assert.Equal(t, UnknownCategory, CategoryLabel(9999))
	})
}
