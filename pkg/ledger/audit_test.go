package ledger_test

import (
	"github.com/fundkeeper/backend/pkg/ledger"
	"github.com/fundkeeper/backend/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAuditClean() {
	discrepancies, err := ledger.Audit(suite.ctx, models.DB)
	require.Nil(suite.T(), err)
	assert.Empty(suite.T(), discrepancies)
}

func (suite *TestSuiteStandard) TestAuditReportsOverAllocatedBank() {
	second := suite.createGoal("Emergency")
	_ = suite.createAllocation(second, suite.bank, 500)

	// The balance drops below the allocations without the ledger
	require.Nil(suite.T(), models.DB.Model(&suite.bank).Update("balance", decimal.NewFromFloat(850)).Error)

	discrepancies, err := ledger.Audit(suite.ctx, models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), discrepancies, 1)

	assert.Equal(suite.T(), suite.bank.ID, discrepancies[0].BankID)
	assert.Equal(suite.T(), "Main", discrepancies[0].Name)
	assert.True(suite.T(), discrepancies[0].Allocated.Equal(decimal.NewFromFloat(900)))
	assert.True(suite.T(), discrepancies[0].Balance.Equal(decimal.NewFromFloat(850)))
}

func (suite *TestSuiteStandard) TestAuditDatabaseError() {
	sqlDB, err := models.DB.DB()
	require.Nil(suite.T(), err)
	sqlDB.Close()

	_, err = ledger.Audit(suite.ctx, models.DB)
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
