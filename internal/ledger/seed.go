package ledger

import "time"

const seedFrom = "0x742d35cc6cf5cf4c4e2ec4b4c9c7e8d3e9a2f1c0"

// SeedHistory is the transfer history a fresh session shows, newest first,
// timestamped relative to now.
func SeedHistory(now time.Time) []Transaction {
	h := time.Hour
	return []Transaction{
		{ID: "mock-1", From: seedFrom, To: "0x8ba1f109551bd432803012645hac136c", Amount: "1500", Token: "HUSHR", Network: "Ethereum", Status: Completed, CreatedAt: now.Add(-2 * h), Hash: "0x1234567890abcdef1234567890abcdef12345678"},
		{ID: "mock-2", From: seedFrom, To: "0xa1b2c3d4e5f6789012345678901234567890abcd", Amount: "50", Token: "USDC", Network: "Polygon", Status: Completed, CreatedAt: now.Add(-6 * h), Hash: "0xabcdef1234567890abcdef1234567890abcdef12"},
		{ID: "mock-3", From: seedFrom, To: "0x9876543210fedcba9876543210fedcba98765432", Amount: "1500", Token: "USDT", Network: "BSC", Status: Completed, CreatedAt: now.Add(-12 * h), Hash: "0xfedcba0987654321fedcba0987654321fedcba09"},
		{ID: "mock-4", From: seedFrom, To: "0x1122334455667788991234567890123456789abc", Amount: "5", Token: "BNB", Network: "BSC", Status: Completed, CreatedAt: now.Add(-24 * h), Hash: "0x11223344556677889912345678901234567890ab"},
		{ID: "mock-5", From: seedFrom, To: "0xaa11bb22cc33dd44ee55ff6677889900aabbccdd", Amount: "0.0025", Token: "ETH", Network: "Ethereum", Status: Completed, CreatedAt: now.Add(-48 * h), Hash: "0xaa11bb22cc33dd44ee55ff6677889900aabbccdd"},
		{ID: "mock-6", From: seedFrom, To: "0xdeadbeefcafebabe1234567890123456789abcde", Amount: "200", Token: "MATIC", Network: "Polygon", Status: Completed, CreatedAt: now.Add(-72 * h), Hash: "0xdeadbeefcafebabe1234567890123456789abcde"},
		{ID: "mock-7", From: seedFrom, To: "0x1111222233334444555566667777888899990000", Amount: "100", Token: "USDC", Network: "Arbitrum", Status: Failed, CreatedAt: now.Add(-96 * h)},
	}
}
