package models_test

import (
	"strings"

	"github.com/fundkeeper/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalSelf() {
	assert.Equal(suite.T(), "Goal", models.Goal{}.Self())
}

func (suite *TestSuiteStandard) TestGoalAfterSave() {
	tests := []struct {
		target decimal.Decimal
		err    error
	}{
		{decimal.NewFromFloat(-10), models.ErrGoalTargetNotPositive},
		{decimal.Zero, models.ErrGoalTargetNotPositive},
		{decimal.NewFromFloat(750), nil},
	}

	for _, tt := range tests {
		g := models.Goal{
			Target: tt.target,
		}

		err := g.AfterSave(&gorm.DB{})
		assert.Equal(suite.T(), tt.err, err)
	}
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	note := " Whitespace    "
	name := "  There is whitespace here  \t"

	goal := suite.createTestGoal(models.Goal{
		Target: decimal.NewFromFloat(100),
		Name:   name,
		Note:   note,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), goal.Note)
}

func (suite *TestSuiteStandard) TestGoalNameUniquePerOwner() {
	owner := uuid.New()
	_ = suite.createTestGoal(models.Goal{OwnerID: owner, Name: "Vacation"})

	err := models.DB.Create(&models.Goal{OwnerID: owner, Name: "Vacation", Target: decimal.NewFromFloat(10)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalNameNotUnique)
}
