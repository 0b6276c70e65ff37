package crypto

import (
	"math/big"
	"testing"
)

// FuzzKeccak256 hashes random data with Keccak-256.
// It must never panic and must always return exactly 32 bytes.
func FuzzKeccak256(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0xff})
	f.Add([]byte("hello world"))
	f.Add(make([]byte, 32))
	f.Add(make([]byte, 256))

	f.Fuzz(func(t *testing.T, data []byte) {
		h := Keccak256(data)
		if len(h) != 32 {
			t.Fatalf("Keccak256 output length: got %d, want 32", len(h))
		}

		// Determinism: same input always produces same output.
		h2 := Keccak256(data)
		for i := range h {
			if h[i] != h2[i] {
				t.Fatalf("Keccak256 non-deterministic at byte %d", i)
			}
		}

		// Multi-part hash: Keccak256(a, b) == Keccak256(concat(a, b)).
		if len(data) >= 2 {
			mid := len(data) / 2
			multi := Keccak256(data[:mid], data[mid:])
			single := Keccak256(data)
			for i := range multi {
				if multi[i] != single[i] {
					t.Fatalf("Keccak256 multi-part mismatch at byte %d", i)
				}
			}
		}

		// KeccakHash wrapper must also produce 32 bytes.
		hh := Keccak256Hash(data)
		if len(hh) != 32 {
			t.Fatalf("Keccak256Hash output length: got %d, want 32", len(hh))
		}
	})
}

// FuzzBN254AddRobustness feeds random 128-byte inputs to BN254Add.
// It must never panic on arbitrary input.
func FuzzBN254AddRobustness(f *testing.F) {
	// Seed: all zeros (point at infinity + point at infinity).
	f.Add(make([]byte, 128))
	// Seed: generator point (1, 2) + zero.
	seed := make([]byte, 128)
	seed[31] = 1 // x1 = 1
	seed[63] = 2 // y1 = 2
	f.Add(seed)
	// Seed: two generators.
	seed2 := make([]byte, 128)
	seed2[31] = 1
	seed2[63] = 2
	seed2[95] = 1
	seed2[127] = 2
	f.Add(seed2)
	// Seed: short input (tests padding).
	f.Add([]byte{0x01})
	// Seed: invalid point (random).
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	// Seed: empty.
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		// Limit to reasonable size.
		if len(data) > 256 {
			return
		}

		// BN254Add: must not panic.
		_, _ = BN254Add(data)

		// BN254ScalarMul: must not panic.
		if len(data) >= 96 {
			_, _ = BN254ScalarMul(data[:96])
		}
		_, _ = BN254ScalarMul(data)

		// BN254PairingCheck with valid-length multiples: must not panic.
		if len(data) >= 192 && len(data)%192 == 0 {
			_, _ = BN254PairingCheck(data)
		}
	})
}

// FuzzBLS12G1AddRobustness feeds random data to BLS12-381 G1 Add.
// It must never panic on arbitrary input.
func FuzzBLS12G1AddRobustness(f *testing.F) {
	// Seed: all zeros (infinity + infinity).
	f.Add(make([]byte, 256)) // 2 * 128 bytes
	// Seed: short input.
	f.Add([]byte{0x01})
	// Seed: empty.
	f.Add([]byte{})
	// Seed: 256 bytes of 0xff (invalid field elements, top 16 bytes non-zero).
	allFF := make([]byte, 256)
	for i := range allFF {
		allFF[i] = 0xff
	}
	f.Add(allFF)
	// Seed: valid G1 generator encoding.
	// G1 generator x and y, each padded to 64 bytes (16 zero bytes + 48 byte coordinate).
	genSeed := make([]byte, 256)
	// x coordinate of BLS12-381 G1 generator (48 bytes).
	gx, _ := new(big.Int).SetString(
		"17f1d3a73197d7942695638c4fa9ac0fc3688c4f9774b905a14e3a3f171bac586c55e83ff97a1aeffb3af00adb22c6bb", 16)
	gy, _ := new(big.Int).SetString(
		"08b3f481e3aaa0f1a09e30ed741d8ae4fcf5e095d5d00af600db18cb2c04b3edd03cc744a2888ae40caa232946c5e7e1", 16)
	gxBytes := gx.Bytes()
	gyBytes := gy.Bytes()
	copy(genSeed[64-len(gxBytes):64], gxBytes)
	copy(genSeed[128-len(gyBytes):128], gyBytes)
	// Second point is infinity (zeros), already set.
	f.Add(genSeed)

	f.Fuzz(func(t *testing.T, data []byte) {
		// Limit to reasonable size.
		if len(data) > 1024 {
			return
		}

		// BLS12G1Add requires exactly 256 bytes; test both exact and wrong sizes.
		_, _ = BLS12G1Add(data)

		// BLS12G1Mul requires exactly 160 bytes (128 point + 32 scalar).
		if len(data) >= 160 {
			_, _ = BLS12G1Mul(data[:160])
		}

		// BLS12G1MSM requires multiples of 160 bytes.
		if len(data) >= 160 && len(data)%160 == 0 {
			_, _ = BLS12G1MSM(data)
		}

		// BLS12G2Add requires exactly 512 bytes.
		if len(data) >= 512 {
			_, _ = BLS12G2Add(data[:512])
		}

		// BLS12MapFpToG1 requires exactly 64 bytes.
		if len(data) >= 64 {
			_, _ = BLS12MapFpToG1(data[:64])
		}

		// BLS12MapFp2ToG2 requires exactly 128 bytes.
		if len(data) >= 128 {
			_, _ = BLS12MapFp2ToG2(data[:128])
		}
	})
}
