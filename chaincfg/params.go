// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2022-2026 The Meowcoin Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"math/big"

	"github.com/meowcoin-foundation/mewcd/chaincfg/chainhash"
	"github.com/meowcoin-foundation/mewcd/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a meowcoin block can
	// have for the main network under the MEOWPOW family. It is the exact
	// value of the compact form 0x1e00ffff, so the limit round-trips
	// through the difficulty encoding.
	mainPowLimit = new(big.Int).Lsh(big.NewInt(0xffff), 216)

	// mainScryptPowLimit is the highest proof of work value the scrypt
	// parent of a merge-mined main network block can have:
	// 0x00000fff...ff.
	mainScryptPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// testPowLimit is the highest proof of work value a meowcoin block can
	// have for the test networks and regression test network under either
	// family: 0x7fffff...ff.
	testPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Constants used to indicate the deployment schedule of a consensus rule
// change.
const (
	// DeploymentNeverActive is the StartTime value of a deployment that is
	// defined but never scheduled.
	DeploymentNeverActive int64 = -2

	// DeploymentNoTimeout is the Timeout value of a deployment that never
	// expires.
	DeploymentNoTimeout int64 = math.MaxInt64
)

// DeploymentID identifies a specific consensus rule change to be voted on.
type DeploymentID int

// Constants that define the deployment offset in the deployments field of
// the parameters for each deployment.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy DeploymentID = iota

	// DeploymentTaproot defines the rule change deployment ID for the
	// Taproot soft-fork package (BIPs 340-342).
	DeploymentTaproot

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.
type ConsensusDeployment struct {
	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts, or DeploymentNeverActive.
	StartTime int64

	// Timeout is the median block time after which an attempted deployment
	// expires, or DeploymentNoTimeout.
	Timeout int64

	// MinActivationHeight is the earliest height at which the deployment
	// may become active, regardless of signalling.
	MinActivationHeight int32

	// Threshold is the number of signalling blocks within a period required
	// to lock the deployment in.
	Threshold uint32

	// Period is the signalling window length in blocks.
	Period uint32
}

// ChainTxData bundles historic transaction throughput data used to estimate
// verification progress.
type ChainTxData struct {
	// Time of the recorded statistics, in Unix seconds.
	Time int64

	// TxCount is the total transaction count up to that time.
	TxCount uint64

	// TxRate is the estimated transaction rate, in transactions per second.
	TxRate float64
}

// Params defines a meowcoin network by its parameters. These parameters may
// be used by meowcoin applications to differentiate networks as well as
// addresses and keys for one network from those intended for use on another
// network. A Params bundle is constructed once and never mutated.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net is the message start (magic) bytes that identify the network on
	// the wire.
	Net [4]byte

	// DefaultPort is the default peer-to-peer port for the network.
	DefaultPort uint16

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the pinned hash of the genesis block. It is nil for
	// networks whose genesis hash is deliberately left unasserted.
	GenesisHash *chainhash.Hash

	// GenesisMerkleRoot is the pinned merkle root of the genesis block.
	GenesisMerkleRoot *chainhash.Hash

	// PowLimit is the highest proof-of-work target per algorithm family,
	// indexed by wire.PowAlgo.
	PowLimit [2]*big.Int

	// PowLimitBits is the MEOWPOW-family limit in compact form.
	PowLimitBits uint32

	// KawpowActivationTime is the Unix time KAWPOW activates
	// (nKAWPOWActivationTime).
	KawpowActivationTime uint32

	// MeowpowActivationTime is the Unix time MEOWPOW activates
	// (nMEOWPOWActivationTime).
	MeowpowActivationTime uint32

	// SubsidyHalvingInterval is the interval, in blocks, at which the block
	// subsidy halves.
	SubsidyHalvingInterval int64

	// PowTargetSpacing is the desired time between blocks, in seconds.
	PowTargetSpacing int64

	// PowTargetTimespan is the legacy retargeting window, in seconds.
	PowTargetTimespan int64

	// LwmaAveragingWindow is the LWMA-1 window size N.
	LwmaAveragingWindow int64

	// PowAllowMinDifficultyBlocks defines whether the network allows
	// minimum-difficulty blocks after long block gaps.
	PowAllowMinDifficultyBlocks bool

	// PowNoRetargeting defines whether the network skips difficulty
	// retargeting.
	PowNoRetargeting bool

	// EnforceBIP94 defines whether timewarp mitigation rules apply.
	EnforceBIP94 bool

	// AuxpowChainID is this chain's merged-mining chain id.
	AuxpowChainID uint16

	// AuxpowStartHeight is the height at which merge-mined blocks are
	// accepted and the retargeter switches to the multi-algorithm LWMA.
	AuxpowStartHeight int64

	// StrictChainID rejects merge-mined blocks whose parent chain id
	// matches ours or whose commitment targets another chain id.
	StrictChainID bool

	// Heights of the buried deployments. They are all 0 or 1 on meowcoin:
	// the chain launched with every legacy soft fork active.
	BIP34Height          int32
	BIP65Height          int32
	BIP66Height          int32
	CSVHeight            int32
	SegwitHeight         int32
	MinBIP9WarningHeight int32

	// Deployments defines the consensus rule changes still subject to
	// version-bits voting.
	Deployments [DefinedDeployments]ConsensusDeployment

	// PruneAfterHeight is the height after which block files may be pruned.
	PruneAfterHeight uint64

	// AssumedBlockchainSize is the estimated disk space, in gigabytes,
	// required for the block chain.
	AssumedBlockchainSize uint64

	// AssumedChainStateSize is the estimated disk space, in gigabytes,
	// required for the chain state.
	AssumedChainStateSize uint64

	// IsMockable indicates whether block times may be manipulated for
	// testing.
	IsMockable bool

	// ChainTxData holds historic throughput statistics.
	ChainTxData ChainTxData

	// Address encoding magics.
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics.
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte

	// Human-readable part for Bech32 encoded segwit addresses.
	Bech32HRPSegwit string
}

// ActivationTimes returns the header serialization context for this network.
func (p *Params) ActivationTimes() wire.ActivationTimes {
	return wire.ActivationTimes{
		Kawpow:  p.KawpowActivationTime,
		Meowpow: p.MeowpowActivationTime,
	}
}

// DifficultyAdjustmentInterval returns the legacy retargeting interval in
// blocks.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// taprootDeployment is the Taproot schedule shared by every network, with
// the threshold varying between mainnet (90%) and the test networks (75%).
func taprootDeployment(threshold uint32) ConsensusDeployment {
	return ConsensusDeployment{
		BitNumber:           2,
		StartTime:           1788739200, // Sep 7, 2026 00:00:00 UTC
		Timeout:             DeploymentNoTimeout,
		MinActivationHeight: 2115366,
		Threshold:           threshold,
		Period:              2016,
	}
}

func testDummyDeployment(startTime int64, threshold uint32) ConsensusDeployment {
	return ConsensusDeployment{
		BitNumber:           28,
		StartTime:           startTime,
		Timeout:             DeploymentNoTimeout,
		MinActivationHeight: 0,
		Threshold:           threshold,
		Period:              2016,
	}
}

// MainNetParams defines the network parameters for the main meowcoin
// network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         [4]byte{0x4d, 0x45, 0x57, 0x43}, // MEWC
	DefaultPort: 8788,
	DNSSeeds: []string{
		"seed-mainnet-mewc.meowcoin.cc",
		"dnsseed.nodeslist.xyz",
	},

	GenesisBlock:      &genesisBlock,
	GenesisHash:       &genesisHash,
	GenesisMerkleRoot: &genesisMerkleRoot,

	PowLimit:                    [2]*big.Int{mainPowLimit, mainScryptPowLimit},
	PowLimitBits:                0x1e00ffff,
	KawpowActivationTime:        1662493424, // UTC: Sep 6, 2022
	MeowpowActivationTime:       1710799200, // March 18, 2024 22:00:00 UTC
	SubsidyHalvingInterval:      2100000,    // ~4 years at 1 minute block time
	PowTargetSpacing:            60,
	PowTargetTimespan:           2016 * 60,
	LwmaAveragingWindow:         45,
	PowAllowMinDifficultyBlocks: false,
	PowNoRetargeting:            false,
	EnforceBIP94:                false,

	AuxpowChainID:     9,
	AuxpowStartHeight: 1614560,
	StrictChainID:     true,

	BIP34Height:          1,
	BIP65Height:          1,
	BIP66Height:          1,
	CSVHeight:            1,
	SegwitHeight:         0, // segwit always active
	MinBIP9WarningHeight: 2016,

	Deployments: [DefinedDeployments]ConsensusDeployment{
		DeploymentTestDummy: testDummyDeployment(DeploymentNeverActive, 1815),
		DeploymentTaproot:   taprootDeployment(1815), // 90%
	},

	PruneAfterHeight:      100000,
	AssumedBlockchainSize: 5,
	AssumedChainStateSize: 1,
	IsMockable:            false,
	ChainTxData: ChainTxData{
		Time:    1661730843, // genesis time
		TxCount: 50000,
		TxRate:  0.5,
	},

	PubKeyHashAddrID: 50,  // starts with M
	ScriptHashAddrID: 122, // starts with m
	PrivateKeyID:     112,
	HDPublicKeyID:    [4]byte{0x04, 0x88, 0xb2, 0x1e}, // xpub
	HDPrivateKeyID:   [4]byte{0x04, 0x88, 0xad, 0xe4}, // xprv
	Bech32HRPSegwit:  "mewc",
}

// testNetParamsTemplate returns the parameter set every meowcoin test
// network variant shares. Each variant copies it and adjusts what differs.
func testNetParamsTemplate(name string) Params {
	return Params{
		Name:        name,
		Net:         [4]byte{0x4d, 0x45, 0x57, 0x54}, // MEWT
		DefaultPort: 4569,
		DNSSeeds: []string{
			"testnet-seed.meowcoin.net",
		},

		GenesisBlock:      &testNetGenesisBlock,
		GenesisHash:       &testNetGenesisHash,
		GenesisMerkleRoot: &genesisMerkleRoot,

		PowLimit:                    [2]*big.Int{testPowLimit, testPowLimit},
		PowLimitBits:                0x207fffff,
		KawpowActivationTime:        1661833868,
		MeowpowActivationTime:       1707354000, // Feb 8, 2024
		SubsidyHalvingInterval:      2100000,
		PowTargetSpacing:            60,
		PowTargetTimespan:           2016 * 60,
		LwmaAveragingWindow:         45,
		PowAllowMinDifficultyBlocks: true,
		PowNoRetargeting:            false,
		EnforceBIP94:                false,

		AuxpowChainID:     9,
		AuxpowStartHeight: 46,
		StrictChainID:     true,

		BIP34Height:          1,
		BIP65Height:          1,
		BIP66Height:          1,
		CSVHeight:            1,
		SegwitHeight:         0,
		MinBIP9WarningHeight: 2016,

		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: testDummyDeployment(DeploymentNeverActive, 1512),
			DeploymentTaproot:   taprootDeployment(1512), // 75%
		},

		PruneAfterHeight:      1000,
		AssumedBlockchainSize: 1,
		AssumedChainStateSize: 1,
		IsMockable:            false,
		ChainTxData: ChainTxData{
			Time:    1661730843,
			TxCount: 0,
			TxRate:  0,
		},

		PubKeyHashAddrID: 109, // starts with k or m
		ScriptHashAddrID: 124,
		PrivateKeyID:     114,
		HDPublicKeyID:    [4]byte{0x04, 0x35, 0x87, 0xcf}, // tpub
		HDPrivateKeyID:   [4]byte{0x04, 0x35, 0x83, 0x94}, // tprv
		Bech32HRPSegwit:  "tmewc",
	}
}

// TestNetParams defines the network parameters for the meowcoin test
// network.
var TestNetParams = testNetParamsTemplate("testnet")

// TestNet4Params defines the network parameters for the fourth meowcoin test
// network. It shares the testnet genesis and schedule.
var TestNet4Params = testNetParamsTemplate("testnet4")

// SigNetParams defines the network parameters for the signet test network.
// Meowcoin signet follows the testnet schedule; signet block signatures are
// not enforced by the proof-of-work core.
var SigNetParams = testNetParamsTemplate("signet")

// RegressionNetParams defines the network parameters for the regression test
// network. Proof-of-work activations sit in the far future so the network
// keeps the legacy header form. It shares the test networks' proof-of-work
// limit and retargeting settings.
var RegressionNetParams = func() Params {
	p := testNetParamsTemplate("regtest")
	p.Net = [4]byte{0x44, 0x52, 0x4f, 0x57} // DROW
	p.DefaultPort = 18444
	p.GenesisBlock = &regTestGenesisBlock
	p.GenesisHash = nil // deliberately unasserted, like the reference chain
	p.KawpowActivationTime = 3582830167
	p.MeowpowActivationTime = 3582830167
	p.AuxpowStartHeight = 19200
	p.IsMockable = true
	return p
}()

// AllParams lists every defined network in registration order.
var AllParams = []*Params{
	&MainNetParams,
	&TestNetParams,
	&TestNet4Params,
	&SigNetParams,
	&RegressionNetParams,
}

// ParamsForName returns the parameters of the named network, or nil when the
// name is unknown. "main" and "mainnet" are synonyms, as are "regtest" and
// "regressionnet".
func ParamsForName(name string) *Params {
	switch name {
	case "main", "mainnet":
		return &MainNetParams
	case "test", "testnet":
		return &TestNetParams
	case "testnet4":
		return &TestNet4Params
	case "signet":
		return &SigNetParams
	case "regtest", "regressionnet":
		return &RegressionNetParams
	}
	return nil
}

// ParamsForMagic returns the parameters of the network with the given
// message start bytes, or nil when no network matches.
func ParamsForMagic(magic [4]byte) *Params {
	for _, params := range AllParams {
		if params.Net == magic {
			return params
		}
	}
	return nil
}
