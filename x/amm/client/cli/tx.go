package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/pondlabs/pond/x/amm/types"
)

// FlagDeadline sets the unix time after which the operation fails
const FlagDeadline = "deadline"

// GetTxCmd returns the transaction commands for the amm module
func GetTxCmd() *cobra.Command {
	ammTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "AMM transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammTxCmd.AddCommand(
		CmdCreatePool(),
		CmdAddLiquidity(),
		CmdRemoveLiquidity(),
		CmdSwapExactIn(),
	)

	return ammTxCmd
}

// CmdCreatePool returns a CLI command handler for registering a pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [token-a] [token-b]",
		Short: "Register a new empty pool for a token pair",
		Long: `Register a new pool for a token pair. The pool starts empty;
seed it with add-liquidity.

Example:
  $ pondd tx amm create-pool upond uusdt --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgCreatePool(clientCtx.GetFromAddress().String(), args[0], args[1])
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdAddLiquidity returns a CLI command handler for adding liquidity to a pool
func CmdAddLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add-liquidity [pool-id] [amount-a-desired] [amount-b-desired] [amount-a-min] [amount-b-min]",
		Short: "Add liquidity to a pool",
		Long: `Deposit both pool tokens in exchange for liquidity shares.

The desired amounts are upper bounds; the actual deposit is locked to
the pool's current reserve ratio. The min amounts bound slippage.

Example:
  $ pondd tx amm add-liquidity 1 1000000 2000000 990000 1980000 --from mykey
  $ pondd tx amm add-liquidity 1 1000000 2000000 990000 1980000 --deadline 1757000000 --from mykey`,
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amounts := make([]math.Int, 4)
			names := []string{"amount-a-desired", "amount-b-desired", "amount-a-min", "amount-b-min"}
			for i, arg := range args[1:] {
				v, ok := math.NewIntFromString(arg)
				if !ok {
					return fmt.Errorf("invalid %s: %s (must be integer)", names[i], arg)
				}
				amounts[i] = v
			}

			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgAddLiquidity(
				clientCtx.GetFromAddress().String(), poolID,
				amounts[0], amounts[1], amounts[2], amounts[3], deadline,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "unix time after which the deposit fails (0 = no deadline)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRemoveLiquidity returns a CLI command handler for removing liquidity from a pool
func CmdRemoveLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove-liquidity [pool-id] [shares] [amount-a-min] [amount-b-min]",
		Short: "Remove liquidity from a pool",
		Long: `Burn liquidity shares and withdraw the proportional reserves.

Example:
  $ pondd tx amm remove-liquidity 1 1000000 495000 990000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			amountAMin, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-a-min: %s (must be integer)", args[2])
			}

			amountBMin, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-b-min: %s (must be integer)", args[3])
			}

			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgRemoveLiquidity(
				clientCtx.GetFromAddress().String(), poolID,
				shares, amountAMin, amountBMin, deadline,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "unix time after which the withdrawal fails (0 = no deadline)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSwapExactIn returns a CLI command handler for swapping tokens
func CmdSwapExactIn() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap-exact-in [pool-id] [token-in] [amount-in] [min-amount-out]",
		Short: "Sell an exact input amount into a pool",
		Long: `Sell an exact amount of token-in for the opposite pool token.

The min-amount-out parameter protects against slippage; the transaction
fails if the output falls below it. Use the simulate-swap query to
estimate the output first.

Example:
  $ pondd query amm simulate-swap 1 upond 1000000
  $ pondd tx amm swap-exact-in 1 upond 1000000 1900000 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			amountIn, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			minAmountOut, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid min-amount-out: %s (must be integer)", args[3])
			}

			deadline, err := cmd.Flags().GetInt64(FlagDeadline)
			if err != nil {
				return err
			}

			msg := types.NewMsgSwapExactIn(
				clientCtx.GetFromAddress().String(), poolID,
				args[1], amountIn, minAmountOut, deadline,
			)
			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().Int64(FlagDeadline, 0, "unix time after which the swap fails (0 = no deadline)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
