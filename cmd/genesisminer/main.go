package main

import (
	"fmt"
	"math"
	"math/big"
	"os"
	"time"

	"github.com/meowcoin-foundation/mewcd/chaincfg"
	"github.com/meowcoin-foundation/mewcd/infrastructure/logger"
	"github.com/meowcoin-foundation/mewcd/mining"
	"github.com/meowcoin-foundation/mewcd/util/panics"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// genesisSpec is a genesis mining template: the header fields of the block
// to search a nonce for, and the proof-of-work limit that bounds its target.
type genesisSpec struct {
	name      string
	timestamp string
	time      uint32
	nonce     uint32
	bits      uint32
	version   int32
	powLimit  *big.Int
}

var (
	// highPowLimit is the 0x7fff... limit of the test network variants.
	highPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))

	// mainMinerPowLimit is the 0x00ff... limit the main network template is
	// mined under.
	mainMinerPowLimit = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 248), big.NewInt(1))
)

// genesisSpecs lists the templates of every chain variant in mining order.
// The testnet4 template carries its own headline; the others share the
// launch headline.
var genesisSpecs = []genesisSpec{
	{"regtest", chaincfg.GenesisTimestamp, 1661730843, 2541049, 0x207fffff, 4, highPowLimit},
	{"testnet", chaincfg.GenesisTimestamp, 1661730843, 2541049, 0x1e00ffff, 4, highPowLimit},
	{"signet", chaincfg.GenesisTimestamp, 1661730843, 2541049, 0x1e00ffff, 4, highPowLimit},
	{"main", chaincfg.GenesisTimestamp, 1661730843, 351574, 0x1e00ffff, 4, mainMinerPowLimit},
	{"testnet4", chaincfg.Testnet4GenesisTimestamp, 1770700000, 0, 0x2000ffff, 4, highPowLimit},
}

func genesisSpecForName(name string) *genesisSpec {
	for i := range genesisSpecs {
		if genesisSpecs[i].name == name {
			return &genesisSpecs[i]
		}
	}
	return nil
}

// minerActivationTimes forces every header through the KAWPOW path: the
// genesis tool always mines with progpow no matter which chain it targets.
var minerActivationTimes = wire.ActivationTimes{
	Kawpow:  0,
	Meowpow: math.MaxUint32,
}

var log = logger.RegisterSubSystem(logger.SubsystemTags.GENM)

func main() {
	defer panics.HandlePanic(log, "genesisminer-main", nil)

	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	level, _ := logger.LevelFromString(cfg.LogLevel)
	logger.BackendLog.AddLogWriter(logger.StdoutWriter(), level)
	logger.SetLogLevels(level)

	// Startup sanity: the pinned genesis constants of every network must
	// still be reproducible. A mismatch means the build is consensus
	// broken, so abort outright.
	for _, params := range chaincfg.AllParams {
		if err := chaincfg.CheckGenesis(params); err != nil {
			panics.Exit(log, fmt.Sprintf("genesis assertion failed: %s", err))
		}
	}

	names := cfg.Positional.Chains
	if len(names) == 0 {
		for _, spec := range genesisSpecs {
			names = append(names, spec.name)
		}
	}

	for _, name := range names {
		mineChain(genesisSpecForName(name), cfg.Threads)
	}
}

func mineChain(spec *genesisSpec, threads int) {
	log.Infof("mining %s...", spec.name)

	genesis := chaincfg.CreateGenesisBlock(spec.timestamp, spec.time, spec.nonce,
		spec.bits, spec.version, chaincfg.GenesisReward)

	result, err := mining.MineGenesisBlock(genesis, spec.powLimit, threads,
		func(nonce, hashes uint64, elapsed time.Duration) {
			rate := uint64(0)
			if secs := uint64(elapsed.Seconds()); secs > 0 {
				rate = hashes / secs
			}
			log.Infof("%s progress nonce=%d elapsed=%ds rate=%d H/s",
				spec.name, nonce, int(elapsed.Seconds()), rate)
		})
	if err != nil {
		panics.Exit(log, fmt.Sprintf("mining %s failed: %s", spec.name, err))
	}

	genesis.Header.Nonce64 = result.Nonce64
	genesis.Header.MixHash = result.MixHash

	genesisHash, err := genesis.BlockHash(minerActivationTimes)
	if err != nil {
		panics.Exit(log, fmt.Sprintf("hashing mined %s genesis failed: %s", spec.name, err))
	}

	fmt.Printf("%s\n", spec.name)
	fmt.Printf("  nonce64: %d\n", result.Nonce64)
	fmt.Printf("  mix_hash: %s\n", result.MixHash)
	fmt.Printf("  pow_hash: %s\n", result.PowHash)
	fmt.Printf("  genesis_hash: %s\n", genesisHash)
	fmt.Printf("  merkle_root: %s\n", genesis.Header.MerkleRoot)
	fmt.Printf("  elapsed: %ds\n", int(result.Elapsed.Seconds()))
}
