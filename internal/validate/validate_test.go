package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/re-libas/relibas-server/internal/db/models"
)

func fieldNames(errs []FieldError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.Field)
	}

	return names
}

func TestStructDonationInput(t *testing.T) {
	testCases := []struct {
		name           string
		input          models.DonationInput
		expectedFields []string
	}{
		{
			name: "valid input",
			input: models.DonationInput{
				FullName:          "Ayesha K",
				PhoneNumber:       "+923001234567",
				Address:           "123 Canal Rd",
				ClothingType:      "women",
				EstimatedQuantity: "11-25",
				PickupDate:        "2025-01-10",
				PickupTime:        "morning",
			},
		},
		{
			name: "missing phone number",
			input: models.DonationInput{
				FullName:          "Ayesha K",
				Address:           "123 Canal Rd",
				ClothingType:      "women",
				EstimatedQuantity: "11-25",
				PickupDate:        "2025-01-10",
				PickupTime:        "morning",
			},
			expectedFields: []string{"phoneNumber"},
		},
		{
			name:  "empty payload reports every required field",
			input: models.DonationInput{},
			expectedFields: []string{
				"fullName", "phoneNumber", "address", "clothingType",
				"estimatedQuantity", "pickupDate", "pickupTime",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			errs := Struct(&tc.input)

			if len(tc.expectedFields) == 0 {
				assert.Nil(t, errs)
				return
			}

			require.Len(t, errs, len(tc.expectedFields))
			assert.ElementsMatch(t, tc.expectedFields, fieldNames(errs))

			for _, e := range errs {
				assert.NotEmpty(t, e.Reason)
			}
		})
	}
}

func TestStructVolunteerInput(t *testing.T) {
	valid := models.VolunteerInput{
		FullName:        "Bilal Ahmed",
		Email:           "bilal@example.com",
		PhoneNumber:     "+923009876543",
		AreasOfInterest: []string{"collection-drives"},
		Availability:    "weekends",
	}

	t.Run("valid input", func(t *testing.T) {
		assert.Nil(t, Struct(&valid))
	})

	t.Run("missing areas of interest is allowed", func(t *testing.T) {
		input := valid
		input.AreasOfInterest = nil

		assert.Nil(t, Struct(&input))
	})

	t.Run("empty areas of interest list is rejected", func(t *testing.T) {
		input := valid
		input.AreasOfInterest = []string{}

		errs := Struct(&input)
		require.Len(t, errs, 1)
		assert.Equal(t, "areasOfInterest", errs[0].Field)
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		input := valid
		input.Email = "not-an-email"

		errs := Struct(&input)
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})
}

func TestStructContactInput(t *testing.T) {
	input := models.ContactInput{
		Name:  "Sana",
		Email: "sana@example.com",
	}

	errs := Struct(&input)
	require.Len(t, errs, 2)
	assert.ElementsMatch(t, []string{"subject", "message"}, fieldNames(errs))
}
