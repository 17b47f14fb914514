package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/pondlabs/pond/x/amm/types"
)

// GetQueryCmd returns the cli query commands for the amm module
func GetQueryCmd() *cobra.Command {
	ammQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the amm module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	ammQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQueryPools(),
		GetCmdQueryPoolByPair(),
		GetCmdQueryLiquidity(),
		GetCmdQuerySimulateSwap(),
		GetCmdQuerySpotPrice(),
	)

	return ammQueryCmd
}

func queryPath(parts ...string) string {
	return fmt.Sprintf("custom/%s/%s", types.ModuleName, strings.Join(parts, "/"))
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current amm module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath("params"), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query a pool by ID
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool [pool-id]",
		Short: "Query a liquidity pool by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, err := strconv.ParseUint(args[0], 10, 64); err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			res, _, err := clientCtx.QueryWithData(queryPath("pool", args[0]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPools returns the command to query all pools
func GetCmdQueryPools() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Query all liquidity pools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath("pools"), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPoolByPair returns the command to query a pool by its token pair
func GetCmdQueryPoolByPair() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool-by-pair [token-a] [token-b]",
		Short: "Query the pool for a token pair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath("pool-by-pair", args[0], args[1]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLiquidity returns the command to query a provider's position
func GetCmdQueryLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity [pool-id] [address]",
		Short: "Query a provider's share balance in a pool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath("liquidity", args[0], args[1]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySimulateSwap returns the command to quote a swap
func GetCmdQuerySimulateSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate-swap [pool-id] [token-in] [amount-in]",
		Short: "Quote the output of a swap without executing it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, ok := math.NewIntFromString(args[2]); !ok {
				return fmt.Errorf("invalid amount-in: %s (must be integer)", args[2])
			}

			res, _, err := clientCtx.QueryWithData(queryPath("simulate-swap", args[0], args[1], args[2]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySpotPrice returns the command to query a pool's spot price
func GetCmdQuerySpotPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spot-price [pool-id] [denom-in]",
		Short: "Query the marginal price for selling denom-in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			res, _, err := clientCtx.QueryWithData(queryPath("spot-price", args[0], args[1]), nil)
			if err != nil {
				return err
			}

			return clientCtx.PrintRaw(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
