package feed

import "github.com/pelusa-v/hushr/internal/avatar"

// SeedPosts is the feed a fresh session starts with, newest first.
func SeedPosts() []Post { return clonePosts(seedPosts) }

// MorePosts is the batch served by "load more".
func MorePosts() []Post { return clonePosts(morePosts) }

var seedPosts = []Post{
	{ID: "mock-26", Content: "Check out this amazing view! 🌅", Author: "Photo Master", WalletAddress: "0xabcd...9356", Handle: "@photomaster", Avatar: avatar.For("0xa012345678abcdef"), TimeLabel: "now", Reactions: Reactions{1, 3, 12, 1}, ImageURL: "/posts/3.webp"},
	{ID: "mock-1", Content: "Just launched my new DeFi protocol! 🚀 Building the future of decentralized finance one smart contract at a time.", Author: "Alex Crypto", WalletAddress: "0x1234...90ab", Handle: "@alexcrypto", Avatar: avatar.For("0x1234567890abcdef"), TimeLabel: "2h", Reactions: Reactions{24, 156, 1800, 43}, ImageURL: "/posts/1.webp"},
	{ID: "mock-2", Content: "Privacy is not about hiding something. Privacy is about protecting something. Your data, your choice.", Author: "Maria DeFi", WalletAddress: "0x2345...1bcd", Handle: "@mariadefi", Avatar: avatar.For("0x2345678901bcdef0"), TimeLabel: "4h", Reactions: Reactions{89, 342, 2400, 127}},
	{ID: "mock-3", Content: "The beauty of blockchain: immutable, transparent, and trustless. Here's my latest NFT collection dropping tomorrow!", Author: "Bob NFT", WalletAddress: "0x3456...2cde", Handle: "@bobnft", Avatar: avatar.For("0x3456789012cdef01"), TimeLabel: "6h", Reactions: Reactions{67, 234, 1200, 89}, ImageURL: "/posts/1.png"},
	{ID: "mock-4", Content: "Web3 social networks will revolutionize how we connect and share value. No more centralized gatekeepers!", Author: "Sarah Web3", WalletAddress: "0x4567...3def", Handle: "@sarahweb3", Avatar: avatar.For("0x4567890123def012"), TimeLabel: "8h", Reactions: Reactions{45, 198, 890, 76}},
	{ID: "mock-28", Content: "", Author: "Silent Photographer", WalletAddress: "0x9876...5432", Handle: "@silentphoto", Avatar: avatar.For("0x987654321abcdef0"), TimeLabel: "6h", Reactions: Reactions{12, 67, 234, 8}, ImageURL: "/posts/1.png"},
	{ID: "mock-5", Content: "Smart contracts are eating the world. Traditional agreements will soon be obsolete. Code is law!", Author: "Dev Master", WalletAddress: "0x5678...4e01", Handle: "@devmaster", Avatar: avatar.For("0x567890123def0123"), TimeLabel: "12h", Reactions: Reactions{123, 456, 3200, 234}},
	{ID: "mock-6", Content: "Just moved 50 ETH to my cold wallet. Security first! 🔒", Author: "Crypto Whale", WalletAddress: "0x6789...5f12", Handle: "@cryptowhale", Avatar: avatar.For("0x6789ab123def4567"), TimeLabel: "14h", Reactions: Reactions{5, 23, 156, 7}},
	{ID: "mock-7", Content: "New generative art collection dropping next week! Each piece is unique and algorithmically created. 🎨", Author: "NFT Artist", WalletAddress: "0x789a...6023", Handle: "@nftartist", Avatar: avatar.For("0x789abc234def5678"), TimeLabel: "15h", Reactions: Reactions{12, 89, 234, 15}},
	{ID: "mock-8", Content: "Yield farming on Uniswap V3 is printing money! 💰 APY is insane right now.", Author: "DeFi Farmer", WalletAddress: "0x89ab...7134", Handle: "@defifarmer", Avatar: avatar.For("0x89abcd345def6789"), TimeLabel: "16h", Reactions: Reactions{8, 45, 178, 9}},
	{ID: "mock-9", Content: "Building the future one smart contract at a time. Web3 infrastructure is getting so much better! ⚡", Author: "Web3 Builder", WalletAddress: "0x9abc...8245", Handle: "@web3builder", Avatar: avatar.For("0x9abcde456def789a"), TimeLabel: "17h", Reactions: Reactions{18, 67, 289, 12}},
	{ID: "mock-10", Content: "Gas optimization is an art form. Just saved 40% gas on my latest contract deployment! 🚀", Author: "Solidity Dev", WalletAddress: "0xabcd...9356", Handle: "@soliditydev", Avatar: avatar.For("0xabcdef567def89ab"), TimeLabel: "18h", Reactions: Reactions{25, 134, 456, 28}},
	{ID: "mock-11", Content: "Found a new yield farming opportunity with 200% APY! Risk level: moderate. DYOR! 📊", Author: "Yield Hunter", WalletAddress: "0xbcde...a467", Handle: "@yieldhunter", Avatar: avatar.For("0xbcdef0678def9abc"), TimeLabel: "19h", Reactions: Reactions{7, 34, 123, 6}},
	{ID: "mock-12", Content: "Just voted on 5 different DAO proposals today. Governance participation is crucial for decentralization! 🗳️", Author: "DAO Voter", WalletAddress: "0xcdef...b578", Handle: "@daovoter", Avatar: avatar.For("0xcdef01789defabcd"), TimeLabel: "20h", Reactions: Reactions{15, 78, 234, 19}},
	{ID: "mock-13", Content: "Extracted 2.3 ETH profit from sandwich attacks today. MEV is the new gold rush ⚡", Author: "MEV Bot", WalletAddress: "0xdef0...c689", Handle: "@mevbot", Avatar: avatar.For("0xdef0123abcdefbcd"), TimeLabel: "21h", Reactions: Reactions{3, 12, 67, 2}},
	{ID: "mock-14", Content: "Flash loan arbitrage between Uniswap and SushiSwap netted me 0.8 ETH in one transaction! 💸", Author: "Flash Loan", WalletAddress: "0xef01...d79a", Handle: "@flashloan", Avatar: avatar.For("0xef01234bcdefcdef"), TimeLabel: "22h", Reactions: Reactions{9, 56, 189, 11}},
	{ID: "mock-15", Content: "Providing liquidity to ETH/USDC pool on Uniswap V3. Concentrated liquidity is the future! 🌊", Author: "Liquidity Pro", WalletAddress: "0xf012...e8ab", Handle: "@liquiditypro", Avatar: avatar.For("0xf012345cdefdefef"), TimeLabel: "23h", Reactions: Reactions{21, 98, 345, 24}},
	{ID: "mock-16", Content: "Gas prices are at 15 gwei right now! Perfect time for those pending transactions 🔥", Author: "Gas Tracker", WalletAddress: "0x0123...f9bc", Handle: "@gastracker", Avatar: avatar.For("0x0123456defef0123"), TimeLabel: "1d", Reactions: Reactions{4, 27, 98, 5}},
	{ID: "mock-17", Content: "Bridged 1000 USDC from Ethereum to Polygon. Layer 2 fees are so much cheaper! 🌉", Author: "Bridge User", WalletAddress: "0x1234...0acd", Handle: "@bridgeuser", Avatar: avatar.For("0x1234567ef012345"), TimeLabel: "1d", Reactions: Reactions{13, 71, 223, 16}},
	{ID: "mock-18", Content: "Staking rewards are compounding nicely! 32 ETH locked in ETH 2.0 for the long term 💎", Author: "Staking Guru", WalletAddress: "0x2345...1bde", Handle: "@stakingguru", Avatar: avatar.For("0x2345678f0123456"), TimeLabel: "1d", Reactions: Reactions{29, 145, 478, 32}},
	{ID: "mock-19", Content: "Found alpha in a new DeFi protocol! 🔍 Early bird gets the worm. Research is key!", Author: "Alpha Seeker", WalletAddress: "0x3456...2cef", Handle: "@alphaseeker", Avatar: avatar.For("0x3456789012345678"), TimeLabel: "1d", Reactions: Reactions{6, 38, 134, 8}},
	{ID: "mock-20", Content: "YOLOd into a memecoin and it 10xd! Sometimes being degen pays off 🚀🤡", Author: "Degen Trader", WalletAddress: "0x4567...3df0", Handle: "@degentrader", Avatar: avatar.For("0x4567890123456789"), TimeLabel: "1d", Reactions: Reactions{17, 89, 267, 21}},
	{ID: "mock-21", Content: "Yield farming across 3 different protocols. Diversification is key in DeFi! 🌾", Author: "Yield Farmer", WalletAddress: "0x5678...4e01", Handle: "@yieldfarmer", Avatar: avatar.For("0x567890123456789a"), TimeLabel: "1d", Reactions: Reactions{11, 63, 198, 14}},
	{ID: "mock-22", Content: "Arbitrage opportunities are everywhere if you know where to look! Made 0.5 ETH today ⚡", Author: "Arbitrage Bot", WalletAddress: "0x6789...5f12", Handle: "@arbitragebot", Avatar: avatar.For("0x6789012345678abc"), TimeLabel: "1d", Reactions: Reactions{2, 19, 76, 3}},
	{ID: "mock-23", Content: "LP tokens are earning me passive income while I sleep. DeFi is beautiful! 💰", Author: "LP Provider", WalletAddress: "0x789a...6023", Handle: "@lpprovider", Avatar: avatar.For("0x789012345678abcd"), TimeLabel: "1d", Reactions: Reactions{14, 82, 245, 18}},
	{ID: "mock-24", Content: "New governance proposal is live! Vote to shape the future of our protocol 🏛️", Author: "Governance", WalletAddress: "0x89ab...7134", Handle: "@governance", Avatar: avatar.For("0x89012345678abcde"), TimeLabel: "1d", Reactions: Reactions{26, 127, 389, 31}},
	{ID: "mock-25", Content: "Shipped a new feature to our DeFi protocol! Zero downtime deployment on mainnet 🛠️", Author: "Protocol Dev", WalletAddress: "0x9abc...8245", Handle: "@protocoldev", Avatar: avatar.For("0x9012345678abcdef"), TimeLabel: "1d", Reactions: Reactions{8, 47, 156, 10}},
}

var morePosts = []Post{
	{ID: "load-1", Content: "Just discovered a new layer 2 solution with 0.001 ETH gas fees! This is the future! 🌟", Author: "Layer2 Explorer", WalletAddress: "0xabc1...def2", Handle: "@layer2explorer", Avatar: avatar.For("0xabc123def456789"), TimeLabel: "3d", Reactions: Reactions{34, 178, 892, 45}},
	{ID: "load-2", Content: "My portfolio is up 300% this month thanks to DeFi yield strategies. WAGMI! 📈💎", Author: "DeFi Degen", WalletAddress: "0xdef2...abc3", Handle: "@defidegen", Avatar: avatar.For("0xdef234abc567890"), TimeLabel: "3d", Reactions: Reactions{67, 445, 1567, 89}},
	{ID: "load-3", Content: "Built my first smart contract today! It automatically distributes rewards to stakers 🎯", Author: "Smart Contract Dev", WalletAddress: "0x123a...bcd4", Handle: "@smartcontractdev", Avatar: avatar.For("0x123abc456def789"), TimeLabel: "4d", Reactions: Reactions{28, 156, 734, 23}},
	{ID: "load-4", Content: "NFT drop was insane! Sold out in 3 minutes. Floor price already 10x 🚀", Author: "NFT Collector", WalletAddress: "0x456b...cde5", Handle: "@nftcollector", Avatar: avatar.For("0x456bcd789def012"), TimeLabel: "4d", Reactions: Reactions{92, 567, 2134, 156}, ImageURL: "/posts/1.webp"},
	{ID: "load-5", Content: "Cross-chain bridge working perfectly! Moved assets from ETH to Arbitrum in seconds ⚡", Author: "Bridge Master", WalletAddress: "0x789c...def6", Handle: "@bridgemaster", Avatar: avatar.For("0x789cdef012345678"), TimeLabel: "5d", Reactions: Reactions{15, 89, 445, 12}},
	{ID: "load-6", Content: "Governance vote passed! New tokenomics will make our protocol even more deflationary 🔥", Author: "DAO Member", WalletAddress: "0xabc7...123d", Handle: "@daomember", Avatar: avatar.For("0xabc789123def456"), TimeLabel: "5d", Reactions: Reactions{78, 234, 1023, 67}},
	{ID: "load-7", Content: "Liquidity mining rewards are crazy good right now! 400% APY on this new pool 💰", Author: "Yield Farmer Pro", WalletAddress: "0xdef8...456e", Handle: "@yieldfarmerpro", Avatar: avatar.For("0xdef890456789abc"), TimeLabel: "6d", Reactions: Reactions{56, 312, 1456, 89}},
	{ID: "load-8", Content: "Zero-knowledge proofs are revolutionizing privacy! This technology is mind-blowing 🧠", Author: "ZK Researcher", WalletAddress: "0x123f...789g", Handle: "@zkresearcher", Avatar: avatar.For("0x123fab789cdef01"), TimeLabel: "6d", Reactions: Reactions{43, 201, 856, 34}},
	{ID: "load-9", Content: "Metaverse land prices going parabolic! Just bought a plot next to a major brand 🏗️", Author: "Metaverse Investor", WalletAddress: "0x456g...abc8", Handle: "@metaverseinvestor", Avatar: avatar.For("0x456ghi890abcdef"), TimeLabel: "7d", Reactions: Reactions{123, 678, 2345, 234}, ImageURL: "/posts/3.webp"},
	{ID: "load-10", Content: "Decentralized identity is the future! No more centralized platforms controlling our data 🔐", Author: "Identity Protocol", WalletAddress: "0x789h...def9", Handle: "@identityprotocol", Avatar: avatar.For("0x789hij123defabc"), TimeLabel: "7d", Reactions: Reactions{67, 289, 1123, 78}},
	{ID: "load-11", Content: "Flash loan attack prevented by our new security module! DeFi security is evolving 🛡️", Author: "Security Auditor", WalletAddress: "0xabc9...123h", Handle: "@securityauditor", Avatar: avatar.For("0xabc901234hijklm"), TimeLabel: "8d", Reactions: Reactions{89, 445, 1567, 123}},
	{ID: "load-12", Content: "Automated trading bot made 50% profit this week! Math and code never sleep 🤖", Author: "Bot Creator", WalletAddress: "0xdef0...456i", Handle: "@botcreator", Avatar: avatar.For("0xdef012345ijklmn"), TimeLabel: "8d", Reactions: Reactions{234, 789, 3456, 345}},
	{ID: "load-13", Content: "Community-driven development is the way! Our DAO just funded 10 new projects 🌱", Author: "Community Lead", WalletAddress: "0x123i...789j", Handle: "@communitylead", Avatar: avatar.For("0x123ijk789mnopqr"), TimeLabel: "9d", Reactions: Reactions{156, 567, 2123, 189}},
	{ID: "load-14", Content: "Interoperability between chains is finally seamless! One click, multiple networks ⚡", Author: "Interop Engineer", WalletAddress: "0x456j...abc0", Handle: "@interopenginer", Avatar: avatar.For("0x456jkl890pqrstu"), TimeLabel: "9d", Reactions: Reactions{78, 234, 1012, 56}},
	{ID: "load-15", Content: "Decentralized storage is replacing traditional cloud! Your data, your control 📦", Author: "Storage Pioneer", WalletAddress: "0x789k...def1", Handle: "@storagepioneer", Avatar: avatar.For("0x789klm123stuvwx"), TimeLabel: "10d", Reactions: Reactions{134, 678, 2890, 234}},
	{ID: "load-16", Content: "Carbon credit tokenization is solving climate change through blockchain! 🌍", Author: "Green Crypto", WalletAddress: "0xabc1...123k", Handle: "@greencrypto", Avatar: avatar.For("0xabc123klm456stu"), TimeLabel: "10d", Reactions: Reactions{267, 1234, 5678, 456}, ImageURL: "/posts/1.png"},
	{ID: "load-17", Content: "Prediction markets called the election perfectly! Decentralized wisdom wins again 🗳️", Author: "Prediction Trader", WalletAddress: "0xdef2...456l", Handle: "@predictiontrader", Avatar: avatar.For("0xdef234lmn567uvw"), TimeLabel: "11d", Reactions: Reactions{345, 890, 4567, 234}},
	{ID: "load-18", Content: "Recursive zero-knowledge proofs are enabling infinite scalability! Math is beautiful 🧮", Author: "Math Wizard", WalletAddress: "0x123l...789m", Handle: "@mathwizard", Avatar: avatar.For("0x123lmn789wxyz01"), TimeLabel: "11d", Reactions: Reactions{89, 345, 1234, 67}},
	{ID: "load-19", Content: "Decentralized social media is gaining momentum! Web3 creators earning more than Web2 📱", Author: "Creator Economy", WalletAddress: "0x456m...abc2", Handle: "@creatoreconomy", Avatar: avatar.For("0x456mno890yz0123"), TimeLabel: "12d", Reactions: Reactions{456, 1567, 6789, 678}},
	{ID: "load-20", Content: "Quantum-resistant cryptography is already here! Preparing for the quantum future 🔬", Author: "Quantum Guard", WalletAddress: "0x789n...def3", Handle: "@quantumguard", Avatar: avatar.For("0x789nop123z01234"), TimeLabel: "12d", Reactions: Reactions{123, 456, 1890, 89}},
}
