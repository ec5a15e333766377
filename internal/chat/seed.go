package chat

import (
	"fmt"
	"time"
)

// Participants are the other members of the seeded conversations. Replies are
// drawn from them.
var Participants = []Sender{
	{ID: "user-1", WalletAddress: "0x1234...5678", DisplayName: "Cases Discussion"},
	{ID: "user-2", WalletAddress: "0x2345...6789", DisplayName: "Alex Crypto"},
	{ID: "user-3", WalletAddress: "0x3456...789a", DisplayName: "Maria DeFi"},
	{ID: "user-4", WalletAddress: "0x4567...89ab", DisplayName: "Bob NFT"},
	{ID: "user-5", WalletAddress: "0x5678...9abc", DisplayName: "Sarah Web3"},
	{ID: "user-6", WalletAddress: "0x6789...bcde", DisplayName: "Tom Trader"},
	{ID: "user-7", WalletAddress: "0x789a...cdef", DisplayName: "Lisa Luna"},
}

// Responses is the canned reply text.
var Responses = []string{
	"Absolutely agree!", "Interesting point", "Let me think about this", "Good idea",
	"Makes sense", "I see what you mean", "That could work", "Nice perspective",
	"Worth considering", "Solid reasoning", "True that", "Exactly!",
	"I disagree", "Not sure about that", "Can you elaborate?", "Sounds good",
	"Let's do it", "Maybe later", "I'm in", "Count me out",
	"What do you think?", "This is exciting!", "Could be risky though", "Need more research",
	"I love this idea", "Not my cup of tea", "Brilliant suggestion", "Have you tried this before?",
	"Seems legit", "Red flag for me", "To the moon! 🚀", "HODL strong",
	"Diamond hands 💎", "Paper hands detected", "This is the way", "Bullish on this",
	"Bearish vibes", "WAGMI", "LFG!", "Wen moon?",
}

// line is one seeded message: who (0 = viewer, n = Participants[n-1]), what, and how long ago.
type line struct {
	who  int
	text string
	ago  time.Duration
}

type seedConversation struct {
	id, name, wallet string
	lines            []line
}

var seedConversations = []seedConversation{
	{"chat-1", "1bp5...0x15", "0x1bp5...0x15", []line{
		{2, "GM! Ready for trading?", 3600 * time.Second},
		{0, "Always ready! What are you looking at?", 3500 * time.Second},
		{2, "ETH is looking bullish today", 3400 * time.Second},
		{0, "I agree, volume is picking up", 3300 * time.Second},
		{3, "What about altcoins?", 3200 * time.Second},
		{2, "Some are looking good too", 3100 * time.Second},
		{4, "MATIC is pumping hard!", 3000 * time.Second},
		{0, "Saw that too, up 15% today", 2900 * time.Second},
		{5, "To the moon! 🚀", 2800 * time.Second},
		{3, "Anyone buying the dip on LINK?", 2700 * time.Second},
		{6, "Already loaded my bags", 2600 * time.Second},
		{0, "Diamond hands 💎", 2500 * time.Second},
	}},
	{"chat-2", "Cases Discussion", "0xCases...Disc", []line{
		{1, "Hey everyone! Welcome to the discussion", 7200 * time.Second},
		{2, "Thanks for setting this up!", 7100 * time.Second},
		{1, "Clear beats clever.", 600 * time.Second},
		{1, "Maybe we test both?", 580 * time.Second},
		{0, "Gut feeling says clarity wins.", 560 * time.Second},
		{2, "Bet", 540 * time.Second},
		{3, "meow-meow", 520 * time.Second},
		{4, "Lorem ipsum dolor sit amet consectetur.", 480 * time.Second},
		{4, "This is getting interesting", 440 * time.Second},
		{2, "What do you think about the new proposal?", 400 * time.Second},
		{3, "Looks promising to me", 380 * time.Second},
		{0, "Need more details though", 360 * time.Second},
		{1, "I can provide more info later", 340 * time.Second},
		{5, "This could be a game changer", 280 * time.Second},
		{0, "What timeline are we looking at?", 240 * time.Second},
		{1, "Probably next quarter", 220 * time.Second},
		{2, "Count me in! 🚀", 180 * time.Second},
	}},
	{"chat-3", "DeFi Traders", "0xDeFi...Trad", []line{
		{3, "Check out this new yield farm!", 1800 * time.Second},
		{0, "What are the APY rates?", 1700 * time.Second},
		{3, "Around 150% APY right now", 1600 * time.Second},
		{4, "Sounds too good to be true", 1500 * time.Second},
		{5, "Could be risky though", 1450 * time.Second},
		{6, "What protocol is it?", 1440 * time.Second},
		{3, "Some new fork of Uniswap", 1430 * time.Second},
		{0, "Red flag for me", 1420 * time.Second},
		{7, "I agree with caution", 1410 * time.Second},
		{5, "Always DYOR before investing", 1400 * time.Second},
	}},
	{"chat-4", "NFT Collectors", "0xNFT...Coll", []line{
		{4, "New drop coming soon!", 900 * time.Second},
		{0, "Which collection?", 800 * time.Second},
		{4, "CryptoPunks derivative", 700 * time.Second},
		{2, "Mint price?", 600 * time.Second},
		{4, "0.1 ETH per NFT", 500 * time.Second},
		{1, "That seems reasonable", 450 * time.Second},
		{3, "Art looks decent too", 400 * time.Second},
		{5, "Team is doxxed?", 350 * time.Second},
		{4, "Yes, all verified", 300 * time.Second},
		{0, "Utility planned?", 250 * time.Second},
		{4, "Gaming integration coming", 200 * time.Second},
		{6, "Bullish on this collection", 150 * time.Second},
	}},
}

// createConversations builds the seeded conversations for viewer relative to
// now. Output only depends on viewer and now.
func createConversations(viewer Sender, now time.Time) []*Conversation {
	out := make([]*Conversation, 0, len(seedConversations))
	for _, sc := range seedConversations {
		conv := &Conversation{ID: sc.id, Name: sc.name, WalletAddress: sc.wallet}
		for i, l := range sc.lines {
			from := viewer
			if l.who > 0 {
				from = Participants[l.who-1]
			}
			sender := from
			conv.Messages = append(conv.Messages, Message{
				ID:        fmt.Sprintf("msg-%s-%d", sc.id[len("chat-"):], i+1),
				Content:   l.text,
				SenderID:  from.ID,
				CreatedAt: now.Add(-l.ago),
				Sender:    &sender,
				Delivery:  Delivered,
				Color:     colorOf(from.ID),
			})
		}
		if n := len(conv.Messages); n > 0 {
			conv.LastMessage = conv.Messages[n-1].Content
		}
		out = append(out, conv)
	}
	return out
}
