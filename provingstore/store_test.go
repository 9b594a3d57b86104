package provingstore

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"github.com/unicornultrafoundation/go-helios/u2udb/memorydb"

	"github.com/tessera-network/go-tessera/logger"
	"github.com/tessera-network/go-tessera/native"
)

func cacheLessStore(t *testing.T) *Store {
	logger.SetTestMode(t)
	return NewStore(memorydb.NewProducer(""), LiteStoreConfig())
}

func TestCounters(t *testing.T) {
	s := cacheLessStore(t)
	defer s.Close()

	require.EqualValues(t, 0, s.GetNextBlockID())

	genesis := common.HexToHash("0x11ee")
	s.ApplyGenesis(genesis)
	require.EqualValues(t, 1, s.GetNextBlockID())
	require.EqualValues(t, 0, s.GetLatestVerifiedID())
	require.Equal(t, genesis, s.GetLatestVerifiedHash())

	s.SetNextBlockID(10)
	s.SetLatestVerified(9, common.HexToHash("0x09"))
	require.EqualValues(t, 10, s.GetNextBlockID())
	require.EqualValues(t, 9, s.GetLatestVerifiedID())
	require.Equal(t, common.HexToHash("0x09"), s.GetLatestVerifiedHash())
}

func TestHaltedIsOneWay(t *testing.T) {
	s := cacheLessStore(t)
	defer s.Close()

	halted, _ := s.IsHalted()
	require.False(t, halted)

	s.SetHalted("proof conflict")
	halted, reason := s.IsHalted()
	require.True(t, halted)
	require.Equal(t, "proof conflict", reason)
}

func TestForkChoices(t *testing.T) {
	s := cacheLessStore(t)
	defer s.Close()

	parent := common.HexToHash("0x0a")
	require.Nil(t, s.GetForkChoice(1, parent))

	fc := &native.ForkChoice{
		BlockHash: common.HexToHash("0x0b"),
		ProvenAt:  native.Timestamp(1700000000),
		Provers:   []common.Address{common.HexToAddress("0x01")},
	}
	s.SetForkChoice(1, parent, fc)

	got := s.GetForkChoice(1, parent)
	require.NotNil(t, got)
	require.Equal(t, fc.BlockHash, got.BlockHash)
	require.Equal(t, fc.ProvenAt, got.ProvenAt)
	require.Equal(t, fc.Provers, got.Provers)

	// same id, different parent is a distinct key
	require.Nil(t, s.GetForkChoice(1, common.HexToHash("0x0c")))
	require.Nil(t, s.GetForkChoice(2, parent))

	// bypass the cache to check the persisted encoding
	s.cache.ForkChoices.Purge()
	got = s.GetForkChoice(1, parent)
	require.NotNil(t, got)
	require.Equal(t, fc.Provers, got.Provers)
}

func TestProposedBlockRing(t *testing.T) {
	s := cacheLessStore(t)
	defer s.Close()

	const maxNumBlocks = 4

	_, ok := s.GetProposedBlock(maxNumBlocks, 1)
	require.False(t, ok)

	fp1 := common.HexToHash("0x01")
	s.SetProposedBlock(maxNumBlocks, 1, fp1)
	got, ok := s.GetProposedBlock(maxNumBlocks, 1)
	require.True(t, ok)
	require.Equal(t, fp1, got)

	// id 5 occupies the same ring slot as id 1
	fp5 := common.HexToHash("0x05")
	s.SetProposedBlock(maxNumBlocks, 5, fp5)

	got, ok = s.GetProposedBlock(maxNumBlocks, 5)
	require.True(t, ok)
	require.Equal(t, fp5, got)

	_, ok = s.GetProposedBlock(maxNumBlocks, 1)
	require.False(t, ok)

	s.cache.Metadata.Purge()
	_, ok = s.GetProposedBlock(maxNumBlocks, 1)
	require.False(t, ok)
}

func TestAddressBook(t *testing.T) {
	s := cacheLessStore(t)
	defer s.Close()

	_, err := s.Resolve(7300, "rollup", false)
	require.ErrorIs(t, err, ErrAddressNotFound)

	addr, err := s.Resolve(7300, "rollup", true)
	require.NoError(t, err)
	require.Equal(t, common.Address{}, addr)

	want := common.HexToAddress("0x1234")
	s.SetAddress(7300, "rollup", want)

	addr, err = s.Resolve(7300, "rollup", false)
	require.NoError(t, err)
	require.Equal(t, want, addr)

	// chain id is part of the key
	_, err = s.Resolve(73000, "rollup", false)
	require.ErrorIs(t, err, ErrAddressNotFound)
}
