package isogeny_test

// Test vectors generated alongside the parameter tables: fixed walk
// scalars, the resulting public keys and the shared j-invariant.

var sidhVectors = []struct {
	scheme   string
	sk2, sk3 string
	pk2, pk3 [3][2]string
	j        [2]string
}{
	{
		scheme: "sikep434",
		sk2:    "4f34e1e1e1e1e1e192ad",
		sk3:    "51323c3c3c3c3c3beb0a",
		pk2: [3][2]string{
			{"bdaa245f26339dfc4fdac462bc1d5824b7161a4d43e3393b7ff56e9314cb9959584ea4b8b5ec938f3dc1928453540d0ac6c121730dce", "c2fe463526cbeaef540934171aabda4c700af07a91358d24d73e3ec5b6fd0e7449db099dbce5fb60a6bd495fabbce5d1bc44c760f86a"},
			{"200a3898e1ce93ab82a5f648e2dbaff5a56f44b969cb3c6e4e9a31e37830072ba33e664047cb40b1ca36ff3188e8b2771c7c9746b2bf3", "22daef50e2814a537a86fa1b291e245603b60bd6c7a1e02977c372a93deca901e88efc3faf20abb6ba160e31a676c5edc330582b4a85f"},
			{"1c14cd8602aa25d5fc64532038890bcbb1a439c63d137253ad6dd2b75b8bd35feed10033fb41f5a03e07aa38e92b41696c69799031f75", "1ef031b60f5dd2f7c20b97e43ebe76cfe16c597b4f2c975ff1d8107f7ecca7611432e947735138b552472cf4cc6e89ad14226dac02a46"},
		},
		pk3: [3][2]string{
			{"61859a8da2186093ff41e992e14c312e6a6d8b1880b37af46d94b65c2f4d50b023ccfdc0f74f0d57b52d8ca4c100d7345743eff0359", "60bfb1733dcda1d68a24c5bdf985087a11450adb5de3fc5c69db9fd0fd2bdcdfb4e93f7cec58e8f1e3fc04afd45deacc168785f1295e"},
			{"1800287b07139659f5845cfcea38782f11868e43ea632a4dddf5214d6b732d13ffec395d32baa0e23f00c6212bdc96f9e93f3bbf50b66", "c974f5ddda3a309e1fd6866093a8c3be494edfcee39b63e2fd32116ebc98ef5dd720636c58662445f0eaecaff3f28b817085910b66a4"},
			{"b877e999748b196e92c270b38dd1e5ff5e4c61400a67300493bbd403280f36672f54b71e8fb7a774e2f44587db5080e591ec6dae122d", "1f78372b1464ce2f86fc5404f443341cefa229f623f027621ea291439952fde46593995ab1da4f4e04d9f8077f70e8f0b0edd56283d56"},
		},
		j: [2]string{"152838c721701dd0734419b349d3a227e6f18a3d910d4650f16321145fbbd1f8bb85adf98f940c8261f8fd450d4e7d1dc6e4bb3f1b3bf", "caa7f09ae5bb0c8ad299a73804892019de3ac57e4b4cce27f824c58c501b89394d974d7e5ae03c454853f01a6a594deadf8370af5d80"},
	},
	{
		scheme: "sikep503",
		sk2:    "4f34e1e1e1e1e1e192ad",
		sk3:    "51323c3c3c3c3c3beb0a",
		pk2: [3][2]string{
			{"15c975e8fa9e3239a27c86ca6f5c01f883aa6dd96510786144d311c7072a28409c6b45b9a61d5aef9a7778dca905a7a0368fd71548fa13d1510cc4e5a58f77", "3226332de19116c4caf028e7e3982f94fe76f78eeba87d2b34e8bdd900b12235e8ce5cf775a4b8f4aec26acddabe8d5df82e35e902f23bf5c2221022c881df"},
			{"7f2a7fe93d8429ecf1aeebce4b3e45db8f36696806e91eebfaf155fb0260e058cb45661e5f2070612a3414cc135d0e13f3e0697e7673606dc6e51190be9b7", "3690eca8c830ef961d35acd6dfaf94dcf8d0257413f8091db7a9f94635f0c1d3b63ca0cb51e45a00185049a172b06b32d09dc7b87cd7102d9e85e3bbc51212"},
			{"3a3be58d5d62673c39c47b925324922c3cc9ef15e53b4de2aca84e32e0ebd11264533f586f1305a42bcd967beba4aceb7f1a17e97c17ad3951d99a17bb9bef", "35c93e5f7ac0f66eda8a04c2dce3922481796b98aa735fb15c91f5adcdca83f5d703670d32a2cdb34ac2821ac1907be8397579df9c3ae7ddd7865fa4dc2e4f"},
		},
		pk3: [3][2]string{
			{"28998441286f0d7b33aa117bd97e153280dbfd7bb9f581b17859780d701a2fd68968cc6a04a65d6c9385886dc0df8449d91ce3565966399d08c142207588ae", "15d0d6e1a7dd9f0eb411c601b9fb3e8777ca4bde55ea90df2cb6473253b9927fcd59baab75226a07857e296d0a2c565bfc8acab57641d591228b3c4a536e9c"},
			{"30c866ce4ec68356325b847bf078c7357871f161ffdeb07297f465099247c378a9e40180a642cf19eec220b92469afba98e40ad050387017a3d8f7d6d4c9f3", "3f628ddabb63de099ccfe3be7283cc3d2d24bead05476a8223f762c75f09b414b6b90d582ba24f12c5fdf191a712de5e6243dcf477fee30e59ca18208b51aa"},
			{"c3a4ebc2528c0f8cddb65c2c8f89ab172bdb4a4a6959e3583cae26f3e84a50f9a78c0b3ac625888f8ed439412c8aa671a5b5706dae2dd86ce8b068e373e31", "39e6603171f8f898e18af8df3f5921ad74bc0aeda41e0e15f724067862102e803f5222e0e6763d17adbb978ffd32d0de11b9d5194e27150612ee1f7c689b17"},
		},
		j: [2]string{"133176cef2e52eb0d112e211c5d41709a30ce2520fdb2ac0518912acbb51d9ec44fb5337811ff609f006549dc9fc1e458943bded0f2b0588ec6970ec95f58", "2006a54cfe384eba3bc0c8a94bfe56193d01e8c8a5998f94d4c2827bea05263043b7c673dbf87efef54c1ed824cfca0d32ae567a53f1657976a7272e1fdb77"},
	},
	{
		scheme: "sikep610",
		sk2:    "4f34e1e1e1e1e1e192ad",
		sk3:    "51323c3c3c3c3c3beb0a",
		pk2: [3][2]string{
			{"a41bf605c82ccc0d0326554d26e2ebe68fd41e64d30048227e249c3a3154de3f5dba5892d7ae2bcacce9d6f67f885d4766590f5e80fcdc4beda953fa4e0d064609abbc6144114387c60d1279", "7dc39be736c45871da8c6bb794eff29eaa238c7643fba228c103556c1a19478e33dd782ece2636a3ad36555290f19642874a01ab8de0dc3fad10a541107289cb55d9d9b1ac77a4cc57b1ed54"},
			{"ea823048e8741f461679e936a012b2e099aefad377b8d727664e4759300ac02bd7aa7f9a497ae0827d5a8bafad134544e3aff9b1c6a39ca6d952193bc6d1f9073ae40fe9bd22cd0a44eddd4f", "1013befed1d3192892ebf259787d0302dd09ae84837b249be286e742ddd1e7a611e91bf4f884417bcb5722580bcedf68b8942fd7b32386c1da8d435568185317a42adabd17ed928684bb9fa66"},
			{"c9a0e2e448d7276cb288368aae7f0312bdeb893bb844d97b8c6c0271e0c181e3f368bdf78e64d6d6ad8b2b40e3237ae00683dcdf5b4d899f967a4546a3befe3426cee25a5bdf8e8eb39bf677", "1042c19e40afdb5a81afad6c4d019ccd4e6a1e78fde9abc63b857fc2da3aafff5e4e91102ca43c1116918c632c6d27269c5f291e44852b2483b55fe463239e97d977a9ee9bbcbd6146da4e132"},
		},
		pk3: [3][2]string{
			{"20d24b994200f2316611cbc89fb8ee14c7e2eda58865775043c99e9a35cb879cd7c52a91656d792b83556bf7aa9b093cab1b072ffd584454b160fff8927c23c545671219d57e942a6e52061f4", "1fa02fb395c5f0d2411aa61cf4548960620341e07ba05e0acd765325649103b20350b7d108492a57da6641e4350248974ab3e8299c27572ad0f22e89ce857e7a49de0cd05d93025c6207dd60a"},
			{"8ad0561e47f3498ed05986f8187cf9a7aacf60bf80d42b0378dd0d8f0c375beeb851c47a850b374c57bd2829f3057099a07890b2a4dbfc12f84582fa1a38a3ff88cd110ead739e731cd3f96c", "1851b0a87a226768b3386c8d72f64774393bcf85614b6b7119fdfec1ae13739d21273475648c99c1c67fb315621d346f14434856683075ebf7bba60884e39825e03c04beed517a7ad0d79ca33"},
			{"1f7277897a7e3f4c8e8b1ea4b186537f959e7f9426d7ea0d16c469b4312384d222f9b4df9551c0e340a72245a40697e45d8f9dbb720c11d783ba2732129f92ff5291f8ab841a7235093b2e7e6", "13599dfb33a29a8e68078177fd202ccb52a046f7c9b2e4a8ef30ac2364439641b30745d69ddb75ae1fac6221bb876d837e56e924a2e59553469db66d9ca78b50f286549bcc785912463bd20e6"},
		},
		j: [2]string{"26eae7ee6a57fdd3d9d9f0c27341864490483f18ce26cba64474351b8f4e18b697e46c329b5a8a38546264d2ec416a156fa061aa594e8ae3eeb0c4cc8563b84b5207d4063c6e05f44a365486b", "9c4a2aeac4e2adc148938d0a6ee01a77bd72be1f38e65716a203b840ce537d52e93bdd20cca389b3332eb5a1452a1ffb96a98e17a5357311ef463e61a4214e65ef32ba6e9c0dfcfdf4fc2972"},
	},
	{
		scheme: "sikep751",
		sk2:    "4f34e1e1e1e1e1e192ad",
		sk3:    "51323c3c3c3c3c3beb0a",
		pk2: [3][2]string{
			{"36b33fd572778f6a0a6e3b3ca811982fd117c767a5fa306f312d71611d31e0d12b5d5b3122c70a063541f84f19cb6e235c907501a2d2147e1ddd1d312f735089a78b5de3c688346e618bcd9f98f44a42a63cb9f1efc93c1bb25347e5ce2d", "272c020094a5ad8891ddfd145c9b34f59566cdaeca377a2526469affeb9e5875a4efccaa349ce4d9a4a5972ce3703695fc3deeb8741210c2f4893de838c2ed46170b395c9955267e84dfe9aa28053dcd487f2ec32f2c71b10f42a400ecaa"},
			{"58d74ad06f4bb72c0c693a58ea33c2ee8570581ddf7ec2c21a28407536e7a074e4679428971cb6b368487f096a66726fb50b53d2325c18f96f86c51b7eee8b418375e8e2a88354580713829d7a419ad6a46e9b111ed5da6c1ae4920f1216", "1f20568fdf0668f13e7b495d2ac746485cedf1ce3764bad8d0e031556867454c9aa7a852d350289b60e1764441f78a63d70062ed31432ee295094f0d1b97997269b64015e5bf604c2ec02b2720c691d3c87bf025db675cfe743038ac036d"},
			{"2c3e3eb32cead83726492e542d4dfa565e6cee8607a3908d2a4d0ff66646ab0131bdf3c7efdb4a6a9d88bfa4f40ac343e076034f3ff38f8ef53ff65befe2541286df13bbbc29f010f81ec232ef6fdb383e5270ca5336fc326e1eea2b1f70", "bc2f5d27b0a4134fa9c06b5eff69d045168bc557c0ea5bde3f699513e136da41d22b8996c703e4e6a5ab9e44a359b8842a96ce00248144b8c0a1161f20b6997a324efe531ae74623b8fbc45b757b360875da3109db196d4613f9ae22845"},
		},
		pk3: [3][2]string{
			{"4fd49dced173199588961df1502841e9b711a57cccae01ecfbcc484ea889faa2b32339d706cbf6f0d7933ca0690bd640c4d946acf83cc0209798d489cc249d377fbd8958b31084c11ff4f5d45ed659ef2f07f49f67691c8a8ddc8f94b6e2", "6c7316a3afdd029aa6c29b71aad5f9de52a65dfd5eb6d19370aceee4a4cffcf4a37c9c57e825f319f35825c626693c2acebd32709eed45c202f1ebcb26b591e2c16e18724b2d40aa68e9da423498cde2bd1c4a3354c0bf44f1be4871438f"},
			{"650e98086927b7c47f79ad2a2cc4a6d09d80218fa1fbae389059878568366f07d008f658ad40d99923a1226111208d5596ef3039ef44fd049cbb6396d8090d2a2d64becf2f32b41da8faf4c88d33bcf13485abc88c296b13535c509629a7", "1da271f2ff2211af022d3a4fa79046577d0ba2067286749bcaac8f2d255f1555ca5496d924a537441a434720aa1f963ae68b38ad6bb0c04636da6523e196d74d448d47325b2f29e4dbbe5b9c332d1e196d8e26d16f4cb3e315003f3ce14f"},
			{"15ffba93776ca9a16b4239f678e459fd9ec96865cb0c371be44781d76cc821b74ada6e2563d991236bb774eed2aee6a91b6a1bd131184bf5a021abfee17fa36bdc45df6bf8f4a5f9505551416cfc932a6e01ef9c5c07cedcdbdf0bdb10e3", "2543c9673ef014ea8962f1f8f30e457192395620f4dd7b8e2a8e07bbeefd2d7a51d63f018261b4e88e44baf4d0bded6c5b235ecea5300dea6a7bb0bf9bb0a56cb4d9007288b400c14869a29197b3084b04d61f97e36ba38079fefed488e8"},
		},
		j: [2]string{"469e784a28c4ac9f646d0801fa519bb1e86d064a162e46b4b12a55789ee163551d9d54cd07fa2f5dc0a47d64e6ed8f597c9f7d0f877ac85dbaa3d79540cd57bea19284e798e947c780e3a5c986392c73e21325dde59fc572aaf2a93d4101", "40a47abf4ea475a2b62afc952715687deee2e08e934afd9b327ced2a1666d476eff4f4c1d4603566fd7c0980f19943eaf8cced4967fbf189187926d6b26b8e8e36c481ca9f45d1a6682daa510e917c13790da98f0bc742429cdf6ee7a3d6"},
	},
}

// Shared j-invariant of the zero-scalar exchange on sikep434.
var zeroScalarJ434 = [2]string{"db9aad769741e00ec830ab65abbe266ac3d25bbf2fb2c11b54225ce317e178d3780182de4ca74d4b5892017a12ce471d23ca762c4f86", "1ebeb0b9fbb0c8e5e7e0c23b48a140b051d08c8b54f35ae50754b54c2d5ac5c930780a7f6c164f86a25899039fc2b98fe91c8ccace5f9"}
