package migration

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/lmittmann/w3"
	"github.com/solo-margin/solo-tools/pkg/codec"
	solocommon "github.com/solo-margin/solo-tools/pkg/common"
	"github.com/solo-margin/solo-tools/pkg/common/devnet"
	"github.com/solo-margin/solo-tools/pkg/common/iface"
)

// Test contract entry points used to seed dev networks
var (
	funcIssueTo         = w3.MustNewFunc("issueTo(address who, uint256 amount)", "")
	funcSetPrice        = w3.MustNewFunc("setPrice(address token, uint256 price)", "")
	funcSetInterestRate = w3.MustNewFunc("setInterestRate(address token, (uint256 value) rate)", "")
)

// interestRate mirrors the contracts' Interest.Rate struct
type interestRate struct {
	Value *big.Int
}

// Env is what a step runs against
type Env struct {
	Network    string
	Config     *solocommon.NetworkConfig
	Backend    Backend
	Transactor *Transactor
	Logger     iface.Logger
}

type Step struct {
	Name string
	// DevOnly steps refuse to run on anything but a dev network
	DevOnly bool
	Run     func(ctx context.Context, env *Env) error
}

const (
	StepFundAccounts     = "fund-accounts"
	StepIssueTokens      = "issue-tokens"
	StepSetPrices        = "set-prices"
	StepSetInterestRates = "set-interest-rates"
)

// DefaultSteps returns the provisioning sequence in execution order
func DefaultSteps() []Step {
	return []Step{
		{Name: StepFundAccounts, DevOnly: true, Run: fundAccounts},
		{Name: StepIssueTokens, DevOnly: true, Run: issueTokens},
		{Name: StepSetPrices, DevOnly: true, Run: setPrices},
		{Name: StepSetInterestRates, DevOnly: true, Run: setInterestRates},
	}
}

// SelectSteps returns the named default steps, keeping the default order
func SelectSteps(names []string) ([]Step, error) {
	all := DefaultSteps()
	if len(names) == 0 {
		return all, nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	var out []Step
	for _, s := range all {
		if wanted[s.Name] {
			out = append(out, s)
			delete(wanted, s.Name)
		}
	}
	if len(wanted) > 0 {
		var unknown []string
		for n := range wanted {
			unknown = append(unknown, n)
		}
		return nil, fmt.Errorf("unknown migration steps: %s", strings.Join(unknown, ", "))
	}
	return out, nil
}

// parseAmount reads a non-negative decimal or 0x amount, using fallback when s is empty
func parseAmount(s, fallback string) (*big.Int, error) {
	if strings.TrimSpace(s) == "" {
		s = fallback
	}
	if strings.HasPrefix(strings.TrimSpace(s), "-") {
		return nil, fmt.Errorf("amount %q must not be negative", s)
	}
	n, err := codec.ToBigInt(s)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return n, nil
}

func provisioning(env *Env) *solocommon.ProvisioningConfig {
	if env.Config == nil || env.Config.Provisioning == nil {
		return nil
	}
	return env.Config.Provisioning
}

// accounts returns the configured accounts, or the standard dev-chain accounts
func accounts(prov *solocommon.ProvisioningConfig) ([]common.Address, error) {
	if len(prov.Accounts) == 0 {
		return devnet.TEST_ACCOUNTS, nil
	}
	out := make([]common.Address, 0, len(prov.Accounts))
	for _, a := range prov.Accounts {
		if !common.IsHexAddress(a) {
			return nil, fmt.Errorf("invalid account address %q", a)
		}
		out = append(out, common.HexToAddress(a))
	}
	return out, nil
}

func fundAccounts(ctx context.Context, env *Env) error {
	prov := provisioning(env)
	if prov == nil {
		env.Logger.Info("No provisioning config for %s, skipping funding", env.Network)
		return nil
	}
	value, err := parseAmount(prov.FundValue, devnet.FUND_VALUE)
	if err != nil {
		return err
	}
	accts, err := accounts(prov)
	if err != nil {
		return err
	}

	for _, acct := range accts {
		if acct == env.Transactor.From() {
			continue
		}
		balance, err := env.Backend.BalanceAt(ctx, acct, nil)
		if err != nil {
			return fmt.Errorf("failed to get balance for account %s: %w", acct.Hex(), err)
		}
		if balance.Cmp(value) >= 0 {
			env.Logger.Info("%s already has sufficient balance (%s wei)", acct.Hex(), balance.String())
			continue
		}
		env.Logger.Info("Funding %s with %s wei", acct.Hex(), value.String())
		if _, err := env.Transactor.Send(ctx, "fund "+acct.Hex(), acct, value, nil); err != nil {
			return err
		}
	}
	return nil
}

func issueTokens(ctx context.Context, env *Env) error {
	prov := provisioning(env)
	if prov == nil || len(prov.Tokens) == 0 {
		env.Logger.Info("No token issuance configured for %s", env.Network)
		return nil
	}
	accts, err := accounts(prov)
	if err != nil {
		return err
	}

	for _, issuance := range prov.Tokens {
		token, err := env.Config.ResolveAddress(issuance.Token)
		if err != nil {
			return err
		}
		amount, err := parseAmount(issuance.Amount, "0")
		if err != nil {
			return err
		}
		for _, acct := range accts {
			data, err := funcIssueTo.EncodeArgs(acct, amount)
			if err != nil {
				return fmt.Errorf("failed to encode issueTo: %w", err)
			}
			desc := fmt.Sprintf("issueTo %s %s on %s", acct.Hex(), amount.String(), issuance.Token)
			if _, err := env.Transactor.Send(ctx, desc, token, nil, data); err != nil {
				return err
			}
		}
		env.Logger.Info("Issued %s of %s to %d accounts", amount.String(), issuance.Token, len(accts))
	}
	return nil
}

func setPrices(ctx context.Context, env *Env) error {
	prov := provisioning(env)
	if prov == nil || len(prov.Prices) == 0 {
		env.Logger.Info("No oracle prices configured for %s", env.Network)
		return nil
	}
	oracle, err := env.Config.ResolveAddress(prov.Oracle)
	if err != nil {
		return fmt.Errorf("oracle: %w", err)
	}

	for _, p := range prov.Prices {
		token, err := env.Config.ResolveAddress(p.Token)
		if err != nil {
			return err
		}
		price, err := parseAmount(p.Price, "")
		if err != nil {
			return err
		}
		data, err := funcSetPrice.EncodeArgs(token, price)
		if err != nil {
			return fmt.Errorf("failed to encode setPrice: %w", err)
		}
		if _, err := env.Transactor.Send(ctx, "setPrice "+p.Token, oracle, nil, data); err != nil {
			return err
		}
		env.Logger.Info("Set price of %s to %s", p.Token, price.String())
	}
	return nil
}

func setInterestRates(ctx context.Context, env *Env) error {
	prov := provisioning(env)
	if prov == nil || len(prov.InterestRates) == 0 {
		env.Logger.Info("No interest rates configured for %s", env.Network)
		return nil
	}
	setter, err := env.Config.ResolveAddress(prov.InterestSetter)
	if err != nil {
		return fmt.Errorf("interest setter: %w", err)
	}

	for _, r := range prov.InterestRates {
		token, err := env.Config.ResolveAddress(r.Token)
		if err != nil {
			return err
		}
		rate, err := parseAmount(r.Rate, "0")
		if err != nil {
			return err
		}
		data, err := funcSetInterestRate.EncodeArgs(token, &interestRate{Value: rate})
		if err != nil {
			return fmt.Errorf("failed to encode setInterestRate: %w", err)
		}
		if _, err := env.Transactor.Send(ctx, "setInterestRate "+r.Token, setter, nil, data); err != nil {
			return err
		}
		env.Logger.Info("Set interest rate of %s to %s", r.Token, rate.String())
	}
	return nil
}
