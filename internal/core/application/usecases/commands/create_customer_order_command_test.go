package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
)

func TestNewCreateCustomerOrderCommand(t *testing.T) {
	tests := []struct {
		name         string
		orderNumber  int
		customerCode int
		lines        []commands.OrderLine
		wantErr      bool
	}{
		{
			name:         "valid command",
			orderNumber:  1001,
			customerCode: 7,
			lines:        []commands.OrderLine{{ProductCode: 42, Quantity: 10}},
		},
		{
			name:         "no lines is valid",
			orderNumber:  1001,
			customerCode: 7,
		},
		{
			name:         "zero order number",
			orderNumber:  0,
			customerCode: 7,
			wantErr:      true,
		},
		{
			name:         "zero customer code",
			orderNumber:  1001,
			customerCode: 0,
			wantErr:      true,
		},
		{
			name:         "zero product code in line",
			orderNumber:  1001,
			customerCode: 7,
			lines:        []commands.OrderLine{{ProductCode: 0, Quantity: 10}},
			wantErr:      true,
		},
		{
			name:         "zero quantity in line",
			orderNumber:  1001,
			customerCode: 7,
			lines:        []commands.OrderLine{{ProductCode: 42, Quantity: 0}},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateCustomerOrderCommand(tt.orderNumber, tt.customerCode, tt.lines)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.orderNumber, cmd.OrderNumber())
				assert.Equal(t, tt.customerCode, cmd.CustomerCode())
				assert.Equal(t, tt.lines, cmd.Lines())
				assert.NoError(t, cmd.Validate())
			}
		})
	}
}

func TestCreateCustomerOrderCommand_Validate_ZeroValue(t *testing.T) {
	cmd := commands.CreateCustomerOrderCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerOrderCommandIsNotConstructed)
}
