package params

// Precomputed tables for the width-6 Poseidon instance over the BLS12-377
// scalar field. Deriving fresh parameter sets (Grain LFSR, Cauchy matrix
// construction) is out of scope here; New only slices and validates these.

// roundConsts holds one constant per state element per round, consumed
// sequentially by the round schedule.
var roundConsts = []string{
	"0c2351155a175dc77c8ceb2da33fdc0889b6d0d71a3f8ada3b5425a0f79051b9",
	"0405347df21a6a3dc45ac18fb5d2e0f78caaaee1b2ff0ef86f58f4711a98e4b5",
	"038b864eada5fad07ee172e1da024d7f8102f705660b0290eaa6b3e7ebbe3ff6",
	"07491e6b79c467d0820abfc85b113089844fd944326077a132a1701e71345b95",
	"0eb57d6abc793a9bc5628d9fd75ee647ddfd583abb8e8773ba00fdedc4e7b415",
	"06003cd3f15ac1a7ff8aa01dc3cb1d8804ad1e8c4844873a03af840bfecc36fa",
	"0a7098b0996867c3cfc4cd0e82aec11eee6d00ea08135e8d0cfba152609956ca",
	"01ed97a904fb3f3b8a319df9377dd7008a51b3a115495138514a609ba6317b3b",
	"079ed292bc3f76cd6609954ce6567b07446dc988818a97617236458689153b05",
	"06ae893a7fc9590149996ea2aad9ac0efd74b5df1994f5657fa022365c0ed78a",
	"109920e7cfcf4cc3702d0b7700318cad89bd74fe3c846be4d4856db183cce80d",
	"0da3adefbefc89de3a6abc9a7d71084af34e31b26296c17565a53483bae27d86",
	"0095e8f9c898bef4ff79296f6829fb7c074388092a4d62e4a49bd71c0560a48e",
	"09ccb409002bd85387f764baba3e624322239f1dd1ce112660726be82f0f5cd0",
	"0873882ccfb92332ac8d6862374131fa3e1e610fc18790779f9a9aa344d95676",
	"082fa64566792ff8ade256abb0ed4b59277469e7a2c0f97fd0dcc277fea7ad9c",
	"09613ade17bdca2fc7455f24dcfd4244b1270c549f4deb0db2316caad716a20a",
	"0854cef75dbf9d3f2141a3d8e5ccb5566324b97afcabda606368578b96537a12",
	"039219f6fa18b7bc7bcd10816c64a3185aff8eb1aacc6887928e4847faccbf80",
	"08eece4f4ddfff2cfd98184a67afc313338a9e4b3e3e23b13735b23a25bbf329",
	"030edd03ef67953862cc9fa20b9bcf68829880840023917b4d4776f0789817de",
	"11ec0f401503fbd88535ef2208cd47c1128abf4a2e901b3004462200ad79861d",
	"074141ef4e944bdc1e62afcaee989c32845d9df1033de1f805106d1bab233927",
	"04c9673281ed1aabc4d830fcb8a90acc1e21d4ffeb200e75df53f759d9a4d8f2",
	"02847f67adbe8d833d6a08c49109d52dc89818495cb2edd44b3d5a252ce7e933",
	"127575fe962c503c26bfcb4855c9fec55f3cc121969ca90cf127b70943d1e354",
	"0f1ddf66e17f7592d8ce6b5a2fabe36a4cae2ba01aec03dec5a4617592a1bb50",
	"1190d46964bdcc17544b9209bc5fab71dca86dc3db4aab8d3dbaa5d167aa5dee",
	"0a34d54703d0c9d26225786ea0d2f16c6a0c053c104c89d5d553a4337bef3c5d",
	"0eb619e77e6a81f12bb0d5a42c15a81315e3252b34299bdf2387232cadce91e0",
	"0406bad5448bb993a4bc74b324974e6a53dea86c16cc55cdcea879166d8ba96a",
	"10b3a4e1310c422bd33996da7d70516f3480d20ebffa1cb24fc45b8ed54970b0",
	"0ce0e5aac1bf6bbbe19041b05fa1ac0ff2dc7a55c88c6afef78b79ba07fff11d",
	"07c9edd1ace035ff34b033d0c04ed283ddc482055dfc51117544356aa134bedc",
	"0b0fdf55e2958349467438d0af04b51499a38f547f278f6d82330d301c3061be",
	"0af90675a8ca0d9e29d19c63d55c0b74f31fe7ec1848a2d19f9751bbcf6fa052",
	"0416ad1635c5ba2a581836f49a5990c02ac44bba15a02e322830da26a6083059",
	"0e4b26cff3154998843947eb15cfe6d4f8911f5e2018f3a994ddd5306f4a7dbc",
	"0b898e73423cbda5727bdba7ed56e03744d3a72830b6d7e53d41a19cd830877a",
	"00ce3849941a777412f8fc84ffb3a4de418f3566d53b2747c16b97842ca56f96",
	"05542bc3f9369e7243e19da3edbe4cfefdd65187af123c2c9a671452a6d0e00a",
	"0e0781fecd7bc8825ca944c3d7211845feabf102044a8caf3380c186ac86cd97",
	"1062557fb8d9602d4035e158d96e3d03e1f582f1c83016caf4bd08bfa31d79d1",
	"09ffcb2504b50cf2cd7407f9591fb55647c69a58a8be71a8819f410860f0341b",
	"0c33bc37b1fe4f293662dfa63c60d1090294e9595464085514817663dacab372",
	"0a2133101822a2939b0468e38920c98d8e5d5044401792faa1032aef1cd735c2",
	"10c0f4b6f62e2d8d76e889c9d775972c905c88e551602346371d977f3545c280",
	"0c2b9200507b48a5d2493762f59b0ac6f74a70448ed129657ca12f78deee9055",
	"0575cf06cb71f8382e1d07bf5a18859641532ee3fb05f65133ca5082f6f32a8a",
	"083f71ad936ea4d925a6266a05b86a1b817ccf181dc8b8dfff7b1f058dd7e8b9",
	"0a62549c320d31dd6f4d58b8d3c9cf0cc17720ab273349426c632a71bbf2cabb",
	"09265cdffc1eb57bb1759634c1c754edf3a502d090d8c37ef6e91ebde6763309",
	"0a538ae3921ec935ed5468b67b7a771ba6c68d9ba91c5f2814bcd56db436ae48",
	"0853caa98869cb62ce075376aae6245c6b00afeb12ee0da81675161624f390a2",
	"03acb2af9a96f073a2e775244888c5eac949e558718d165f0de4732b43e2e510",
	"01591679ac1ac327dcf0f728c6107d8bf1db2501881ac2cd6d2bbad262420e72",
	"0c564338439598297a7f5c7a8fefff6b38fe071bfceffc126ff384649bae25b7",
	"11eaa3dae0e46ebfdffe3080a97a72231127a3c9d7ed59b613443ff46ee23c25",
	"0e7ea7281259282dfe202d40732afc970f3e73d86efd4a1aefdbb653c43eb366",
	"0efbe4ecbe9ae0576b97493f528b518e68472c0aa3bc0b2c37165e9e54101bf0",
	"058e47636a21ec16fa567a2bb1051faaa505144316492710913a27a14d11d9d9",
	"0eb2d6d1ffcaf60622d2a8cc0186326646c03661c5da6c310b363c47652e670c",
	"04e6929d5526297fdadeca788e1f7c00467d109f3bb9856511e1fa9050789d18",
	"10f6946a2056b81345d3653202d1d85fa25c92eaa60b24ad9d8732e61d05c0b9",
	"10df4194a246e724952077f6925d83aac07bfdcad68baaeb9a144203790265c4",
	"0d7e0e62d1e6d12c74f9d9d1c89735c99757086d8ce720d4971eef9394af357a",
	"03f418f6e62dc9ebd349f5e12c6ac42e4deefd079d0c237a9fe567525c69e9d1",
	"026eb6678d5c07d8d20dd44e1484e39d25bb5c7c5ac09f910f2fdfe0de72a6cd",
	"0ec76cd92ab2cd6fde5a30246efba13e0cf15762acadec2f3ef103f9bdd8bdee",
	"0c8510626b4c83b13d68024c750370b95f44ca56814824444e382024dd0f2788",
	"10ea1ac9c57a3fe6f0d849832ca07f62e46eb23e6ec09a2d9f189a0b407421a6",
	"0d7d85d980afe47bbb82970adafe1ff2288028802897c0b72cd580cc580d8a79",
	"0a92a4cc22320c4fdeaae9b57f93423ef2b925af66d2c4332c85888b9fd85e0b",
	"00350616c89e99d94e6d6cee58a1c82d14a5f349ab713d7ac96af1153a2e6cfe",
	"0a77bf4028da8fe601c818596d9522917970be9af3f62b33c4fc381b3a70ae89",
	"0694781c1b35863e415c640190b087404932f8cd507a609da346e690d7bf89f4",
	"050629eb15f65cfa4e03459ff227cd60751c64958030ce894e9f802809b61a2d",
	"120adb10f3ee434d14dc712daf5aba39aad001e77dfbf41ae9716cb41d073ec3",
	"0c204b43766708ffcfca3b509ec28d09771fd6b529991cc02cdc69bf0537cc61",
	"0ea9872dada6e7279a0ceeecd475469339683f20a23682080afb0671814df6ae",
	"0bb38042c0cdf9e97f8f7de5037a52a82a836ac179ba3b1769f191437f00ed9b",
	"01fda7765d12652c7f38223bc1e07f8849eeec7277ab4a3523c113b89da87fff",
	"0d663304f1e4478873e07ebf322d2bbdaa0c786bfbd0e4832a328959e1ca1205",
	"1118255f586c02d2da2b1fa58a1b0681c192fc38f48477dea33144955b4312b4",
	"0b756e66a66ceeb2f07208a9082ac2b109efd9f1cabd22c8854d8ff38211536d",
	"034cb9f99e74615540b71ba6c4a51964120bf139c58d5e08f84d260305db2826",
	"089eaea471ed16c6563d6e7b049ec2a4400c95c9bc84134be7ce6e6e98ce027b",
	"1192ca289d6d3f2c0aa48a738366dd1e2f277aee9d3f485c7c88b42719ce6966",
	"039c6713daf8a432ba3848ed211427f5d136ff347bcb3a3cc3693bf38ca440ed",
	"0742c6159e4246f64199f26f98e13dab70c248f00f167840d702fc2b8f76408a",
	"0790a93e55e9e5e9dedcdbb2c195bad6a6dcb7597a894caed51e46e0e98a9366",
	"0469379d96f40b09b5c491b7d891e5dbc2af86e28fa3076a980c005027e7b665",
	"060bd68260ef240c663977c7a0071d65307bf8ff6455751530471534d7feaf8b",
	"06b578b77b431228d0e6b84c56dce11dea582ac2ba9e42abd83e1e969def172c",
	"098753aca44519ce8e937d8648ca4889906a25bd32374b73dfd1edaa9c26a03a",
	"0688474f4bf178e7fb4e7d44bbbab0949166d59cc95557a8dca26fe4bc2b0718",
	"1008ea9bd643e1c0e029e54013b9849bf1693bbdd42dd858d00368b7a54618d6",
	"11035d6d60a3d6bc47ce658d09d41418237277ad33f49dcd2480e80080a0b9a8",
	"109d70899c0076bbdd7561aba5d393fdbfe2e4c60e5ad2e2ebe02f27c71903b7",
	"03b5bd18f9a1c73c4905dafaa7a85fa9456d90335269190a901cb87b510f8369",
	"0ebb2756a838162a0eadc292f4edd43a9214cda7355ec430e9dcbddb8df3c0b8",
	"0bf7d0a6daddc5d7686a49f3799901d17b0ae20c3f39bba7ca1a4fd8490496f2",
	"002eec661d00ba4df30a22e77c62c6f6605da3fc8d6c0b09de2a448833fc1557",
	"038b911760b3b4f3786fd3d12c02051c26972cf65332083c69c2b008134381cd",
	"02b06481f4bb4277055b731f0e98ebe1e7f7ebbd58c9f1cd1ba0678882aead8c",
	"03763990301ecef46e73dd70288ac231639714831eebee2fc352c8ee64d09609",
	"0d9ca8fb4db8f4bd887cc4c30b3c5d186210448620146ef3216d189a6a895e09",
	"032a27886887bb2eb62d09995563ec656353910f36c7a2570a1039d096811ce1",
	"0663937a929b6ab46cfb4303a77f8136de48b39183cea7102622097b064b2873",
	"03ce169a29c7c5be3094927b5b06d7eb2d1e23419a64f321c9877e743dcf02ce",
	"037bb99852daa09fa63522c248cdd898390b6a13966012a395a1c1eca65bd57b",
	"0e54a8230a3f07f6825d127edd29a6e9bf5732e53199fb4677e1adf6c3d20c7d",
	"0229a2f646566bb5a7eecb6a14e485fa31cc063996afa2f6537f34671095b6fb",
	"031bfaa6070787cdbf6dd5ba4336e477b7e4243f448c7c0aee9e68aeddbe479e",
	"074b74cf5460b084e7e769e3067e9ab36282779374b41d6484275a2b98db8b10",
	"0e5f88045d2a398a4c24a01340abf9478081121c5bf53ffeec0c1de48a3f0577",
	"00de380fe634714a3146bcd101d4f56fdf29af3ded026bc5fe99f4d481abe20c",
	"026337079dab72dae7b64a402ee61e2d90e2d3cd7ee1f8e06d8a657759259ffc",
	"0960daa9f49133cbc0e5bd57cbaa91dc4eadee90915c815da6b53bf7d541ee44",
	"1284796bb80f29ae27f9d766aaba1fadc7a5bcfa5f69096e71f3ce79a0f7e175",
	"114d70cf47e0a4262110e78b6578f88664d6957ce03a3f0052c5e0b0992681d6",
	"0eb30076406779e3e1aea71437be5c1862c8ad84b6a50bb1353df88aff23239c",
	"0745df43ea31c3e65649e84e973de07980f346e1871e63d9bbe8e87fdc357047",
	"11d80013cca2bc86a92b45ef82e3d304b70653d80f23cfbfe4e9fd446c21d02c",
	"049f8ae32a32d4caffdb21ae67f83ea1993fa9f07c6063384697a72e8aec82c1",
	"0ddb6683348d318446583c9c8885b6540021330e2e38abeda9351c6cf8244566",
	"10899cf8d4ff0177b5fc442adb8131d2b1a75bfe62562629cf15c48c5ee106e2",
	"0e341f67c7f3869868cbd9d2634ba86bbd5d6c339089bdf36aab422f2b722ae8",
	"10a628428250df9dea1d0d33fbd140c4eb1809ad25c5ac8e3565fac66ef84964",
	"0d89bb19cd14677ada641d1af6e544f517297a230e4954717550f000a1c3ed0a",
	"08b37803a6de4fb80b40ca85b9f6b9b194e6324ec5a5815fe4369c13ee9cc90d",
	"0f1ecb5a7f051ac9de8c5b056abc7e9a96244cfd320b8d97de19e3fef88f76e7",
	"0000181e8607175a08218b8b483c5174237abdd810d35a6f0b91e19bea1d8d8d",
	"111b3678122dbc083970e47ae802849291f0c995d21ac40d90967ac7ce5265be",
	"02635457f52afe375da95ec68bb66464a15935c058fad416786177d34f8bab4a",
	"08b843214a4bd35de6d0ef7fc30f9533cc51f236555703f73d20d26c25df1257",
	"11ed99d7935616b135d53e2045781d1d6ccaad1af4d7c7b04d1e395f9c3f743b",
	"01fb8dea06f6298e09cc7575bbba22215c0a725a8b682222ad292b970d218859",
	"020743f9907cb0b468f88d148ea7827bfd4c70368e88c9922d14f3789686aff7",
	"1043f783980ddfa256207bc8ff69449ae393c58d5437181266eef5ca874f44c3",
	"0a4098acf8bbbdc05f191be8092b9ab8876685d80dc6fec567e0be8048b4fdaf",
	"0ed3e84712fd3342bbc715aa326dfc4e1eebf647b63c2424894a8cbcd2bfac07",
	"0a4dbf59c30c7f2feb779909ca4641ff694e7eab4987e24e739914175dd4eda3",
	"0f2259397b3b56bf11467a6954a2e3ca2468c0b8c29cd78193639ef6ecdd2ded",
	"01cc4ae212f34b57c5c25c9d70922066d40c410a6a33abb67c372a11502374c8",
	"10a366c163620da9faf5a609639abc1e2ab0b5bab153850c902a88dccdc55826",
	"12866490a16fb235b31219f1b63e5469d1d5773e848c1d56d8a8e0a8e4c9eb99",
	"042e257aaa3b0b7beefb9ec7ec23871c5f3a9a43d410e28d5eed08b96663b3df",
	"021a8a4e8c99cfd0ef4a043f4aa0a5dd38ce8b563d9d452fe4aeac605e0a8a82",
	"0abc5c4112616b00aac199caca90d7b446b6c657e99c58937213f4826525b3c9",
	"12aa92252a99f9b4d4ba88150494692525b3d0f7b876b5e783947b0d1b8d4d24",
	"01fec0af0e6b6835edbcefdb963226a18bc3552dc4fafb310b891a22692fbf84",
	"032d0213bc8e6a91f029a265833ceac2d1dd3af535cd1a9dd55677adc7789c17",
	"0b7cf8444aa5ad0189c5f18cfafb713d1d78ae42db4517c671da6ed445985205",
	"124d68e5b2a5b873883f6a046feaaa83a6e90da8528038088ce7bd822cfcbc43",
	"124de5943b9cf9b6f5186bf50c4bc9445adf46d37ae96a5fdea7f1c086367e1f",
	"0f39af044e5ccd024883b5b7b06695981293a07b5276000df45297110ac919e8",
	"02cca4ca395a36d75fb9970ccfb9b25beb48e6a4a0441b6dade8512453e0a5a9",
	"02395b4b821859777e10670c3139ccddca3de1b10d7aa15743ce041eece917a4",
	"04f2ce4eb01eac4f91bf2546e429347eec0a29254a5a70c7a45dab2facde321a",
	"082b64cf154ef1f26e0f5b163e4ac2bf91c883a6c40c0c22419c2dd9653ea65e",
	"08208e95be0a20fd86889446793b51746e0e921893f72282df81e0c6ffae3145",
	"07b7ea181e85e19164fb6bfdb4b79b656571f2d481e31fed23e650820cc28305",
	"01f5522ff789e12dff4856b288d4e8b2db01410c1bc295c55667977a7f486b4b",
	"009a67c84905d6690e3d4b8581794d752f5c436cd8bfaf7fde6ca17b2de1c78f",
	"0b220be296e7557a3e020d2588b708981c5b89b6575c21a704e2f153db48ad8f",
	"087742402c62c80ab00ae35dd32b80afca3dd2c041b1c269d7ac9b8c12ef0a3e",
	"0a9b7493bb872ef4c728d7a3baf7b1d5c5c44ea3c0ab4471e9d235311bcd01e9",
	"022cc1a39a7bbbd275b35f18ddaed4c783aafa9b0ce76e9ba5bd0e0aad2d5cd7",
	"0bda45307d57950fa8db0d534297b7ef65e64ccd91313748410e0742d60a7421",
	"097d6e8b96242594d42bb37105d2b954fb038bc9ec945bd28fc58088b94c9b5f",
	"07425533d06dea4bd648aa8713de0514ca49b2d6a02a3e4c64acc6d5a2866737",
	"035516d5900e01bba39f8f6266afd88c05a0ba4e9154b40784d226ecb46e010e",
	"0d8a378798c79db15e3519860b5d374ceb67eaea893725aa2442e1aefd40a760",
	"113ee950a983c77a2951f71a4cc87284fccbb84d10bd6c980fe7b5abdeb3d8cc",
	"0df31fb1d156618abab749a01ad4adf3b15d6f9cb3f5a7b19eac588f16d3fa29",
	"07d0a0fb2646ac3d0177462167611ba8f9f2baaf70947e61a28ece36436e11ec",
	"051d06b8c85932fd97849268bc5a31a50fb4a815a915fc0f631510c9dba01e53",
	"04caa85d078af6ffc6e379c9ed2dc96a39a10f21dce7a8c6c63e31d3a5e0bf5b",
	"074ab8ee439dee971e20cccaa3a9bb742413d9a6cf0f2345d321869b454860fd",
	"056dd2bd3ce00608eb164fdd54e8dfcf3bb6630e24511d8e09f2a54ec6b8f414",
	"000f2fc330e01986f3f02b773512bd58ca0a831b19d18220778d4053bc6b0bec",
	"0669d208f91c1ba842c5ec9d6d0172fb732cdaed642e82638e8656c2df03b074",
	"0168ac2925c2063828bef5eac77bd7cdbce0863ab133496229a31ee5fb39c44f",
	"0e0bafed9cb5f79500fb0ea559a98a0ab91a0f67a6882943c48913b78d423b67",
	"0f785fa50174a4c8c68d2e405b84f660b9a8e5badbb9dcd632d84d8166603ce1",
	"0d52a3f483f507db5ee7e7a3052ffaa854da92e997b840ce45cfff2fb2788e16",
	"0f37eb0a857b74e664b9681ed18b7ed0981e61da5c3b12ad3c74e543fe92c8ba",
	"0c4846a3160f4d6d166870300a1ee93777a23a46ff82a0005ca16ace13fd8e69",
	"081d579b6907203da7fcfb7c1630d969e7651ebb5aad1ccf9ef022128d9acc2c",
	"02fa1b6713d04d8bd3791736bcc287aedfef644b0bbab0fb630a15a4cc5b80b4",
	"1119d30fd3445dc3075f5fe7a350ec3de3cc825d33e6211842203c1ea46d214c",
	"0e11d01b53cfb67d5b3d987aa90b4ea55b54e662f05cf39f848b7a65c5604caf",
	"0968c1c14e340f58677f5cc7a6e424378dab5d28570f76228a40e5ceca6e1ddc",
	"0d2ff5a78db393fc4763e667b225ab4eef5f9ce926b2d63f50e1fe5aaa6cad1a",
	"105fab977c4ff722dcf006564217b58f1ef366d09e4a3f6ce7b6c895223ff3a0",
	"077274ce3de9b351d9c205e5ad335981d41901a66c4218f234e4e7cfd3358d94",
	"0bf3cfd4961fbc2ba7aa7be26b31931be7db1a84c5c6398c226b171b0bbcc888",
	"0b066b82cc07da6deb4986f281fe7ab9009f1ee885e897d50877bf1bb4bfbc7c",
	"0feb371f44279f0d94266837bfce5ada6216ae8b9f248e1a500728cd716b09fb",
	"04bab30e4dbafd968d722cec9c37e6d049f07972beb65987aa55411860a980a4",
	"0190b88abedba33a4ae976d555d0fc4bee46ca560c8251d9dec92818dafc4eae",
	"0a810de42ee017d201ea1e97131413e55524bf0d035e31f25b8efe3cc86562f4",
	"0005107f6b7b1b7c7bd8440a8d4f3d27911e931f9acd3ff374459edbb25d44c3",
	"0ec894664528e66a935550776787716bbcd0190c4da0f02394a31e20c3cd8166",
	"10a4f4fcf424a3a6ed2766d76b107a10eb486c455608be3744b9619bedbb1f4c",
	"11013883bb5573513616a1e79a916727397cce18f0ea456d7de8a05ce42f7da1",
	"059414c8ea2c6336d63e539231df663861ad75f81c032186897264e1a597e472",
	"08d0049f0d97a026c61a094c85a381a10cd7327942ad903b5d209fc4ead62a3c",
	"053437a0dcc32042bce0ca5bf0ebb7f0d0f88deadf3fa0618da32cb865a1d5e9",
	"0ab249afaa8c4e73f49ecb1cba41499c05f24a8440c7cec24eb786068702498d",
	"0b36c850c78ae2896290662cc4b5e5da6a5b60ce702c2bad9f95f4cc9a758e7f",
	"07442d5e114e3c2405a94cb1e823df59e98b046f199635615df8760354958fce",
	"11a0e801cef3833721515de4a5cb30de139ce11d4e32c76cc069a7d158ca65b2",
	"0e88c0411952322a0c17fc8395d602433398d84cd0a3b4c60abe4674d408d633",
	"119271e22c48f7ac45c9bdc35be27abf8d3a719190390f3c5faf0c14c1640ab5",
	"088f18f66d9d1e1e18ced3f8c3b8b15421fa630108816afb982583c25ebe7d42",
	"10648de42cfd6024acde112aae46048931bed7153f512f40d5f8c1ca5d0b568d",
	"034a6750da65a07a0ecda169f8ef2dc9938428ebf0e63f0a28a672b607e75e62",
	"074802cf781ec09ec5e461fbe308d304cb152ee8e94ef05171c6e2234fbfab31",
	"114c123f82403b654b4f1f27297fd85fe39c730fdec0be56bd033355d7147a2a",
	"0d86e8f01ff963ff907deca3c6da9553474badc3c65ae47a27976017b61c430c",
	"118560d8894f066101ff3ada78b37d3cfacc278fa41fe7c835207341e3daaf81",
	"0f06632167f2ee0dafa155b662cd59d3b8ca8f9b30df99035bc7645231d28e38",
	"0c74f58839010ee8ff15d5f3fb964f40cfe9bd66ce6c3c928ccb0a9f5ea51a82",
	"00ab9085ca7be6f1b4453aec0c9a97fdd4f6a919e33b1684a6a755a8a22bb7a6",
	"0e32a0291dc59b53beeff603aa04a5db8bfb00d39351ed22eb4b58e67dee4267",
	"00b4e2db44418728a1a88e69d1770fe438782872f88fad4de8f6d6a365263855",
	"0eca08dd5366e3227c38789a218d007272e9b02458e7242bdee47a1e4b3f8434",
	"0dfb75384b3af21b9372fa7954037ed5311b99579173ea927582c65bea384cf4",
	"00d4091bb3d588db118fbe29c88ce826c02e8593c7a568979ca727d22856aee9",
	"0d4627f17b7f077b9d2cf4819c3417391ef5785a3fb70a065b1c45bf0ea036b2",
	"090d75a43622e1f8e274b73c6629b056c97a84d63e05ffd2f7d5a56e1b76130b",
	"0a716a54aafee30296d9e894b13cadb551e183d9664592c37523ae4d329f63d9",
	"03ac0a8b924007abda58ad29a51c9543324901aaca296bc5ee4d5630c5281c13",
	"08a02c8e85951d68869c6832c1441bbb84f23d0a904254411b7bd6679b08c62d",
	"0c15eddf4b86f9bd7780ab1acee9edf2f883fc42364c0b4a3f6200e277e4f3d9",
	"0759de750b650223285cc49e674a008ec6162184d97dfc282796027e465a0b3c",
	"078ea5b26d9eb3296abccfa03450f3f726af78bdf43d1a7550eef68d68b96126",
	"1010779dfd22cd8fe89b6c39b695df4e62426df0f59c9f59dd0906c43505f14f",
	"0eaa300e2084c726bc6f53a2773863773ba87844f883f837513f85a602a93ac4",
	"0220acbdb7e3f5a7912721daa90e853a852367b8994c43a829007b9144f2daf2",
	"076c4c7eef4f28b83856d022d36aeb623acfd548ab125193bcdb6a29aad878d9",
	"125665c7bb58231ba1dd54e1483a41042fe954b1a5b7bdc9a53f1a113a43a486",
	"0b9f85a2c6997160d1ae5b7e2bab6b0584dbd529acb43f45ce30e19428cbd2fc",
	"0d70721dee8d99d0c9ceeed3d46b5ad16044de0855a4df1952e60886dfd49ef8",
	"11da3bbe32a68fdeb883475c76e0a35c240b0d3b7665322e8ec8c454da554b68",
	"082039d1ad9cf645d91457a675da462bac67dbbee9286ef6f72738eb12572c7d",
	"00b1597efbf34e62a3b776b6175cf723c5e43a1e0e1a095a0b71316332cc260a",
	"02935d0b694f8c2adc6ccf69da44793ee94efe66d697d328fe3a1587218b63ba",
	"11e85e41f7e833a69a5a5d2514e23d494c535bf73a331e7c781c687c87812b49",
	"0171bf48fb9fae3f7dd26ea2367730ffd1e7a64263677a29f6aa7e85372ac175",
	"0a218cb43fd4a10f028f4e39135a2eb9a37da3f3b920fdb54f12df7fdf878686",
	"05faf2f3961a617226ec5830ea20a337288fe24348d0b7dc57bb77db58336348",
	"05f562dfc62eef2962eb06e62ef3eb465e8aa04442cc261a0cd2e275854d7d0a",
	"03baa52ed324e113f71cc4d3ab1af5eeacb9ddb1ea3fc1f4c15635b53d1cf49d",
	"0e174a03ea3b505e87caebfa45295eff1a35553bea2a523a8558d62ca95cc663",
	"047ad8f6732cc102e86490697c579077ba602c8398f83f479a4060df687eabd4",
	"0a9f212105f8ec29e1abaad32195b44271a27b26e5db6a74fe49aee7cd0a0864",
	"11d3fd77f27cfda6c92ee7b71de6ee9a3c47189563caf9a2a966a2bfd5888a6c",
	"0fe2f0f3cc306301cb4d7be63059f3cfdff9205f147ed0583955c42db1deaec1",
	"10c82367b2f5b85ca4701ee8c297ad8d39d818b6894e474ef8e28f83830906ef",
	"11a767006fca29df6730d0242f159074460fd219fd4eddfeb7a0b059d4c04e3b",
	"0de8247731a696e1c5cbb209b93e70bb8d7a4ce7f3099d6c8ab3939e48b496aa",
	"05aab2353bc1912d2e4bd1b98d5e6950652d417f7e52cfa79e7b2874ebb09f05",
	"0dd2470044b9acd401377df3bcb2d4d864c32fa8b7a678c4e6a6eafc18efa9b3",
	"092ece662ccfb2b3c7c0add7dec07bc66a158b8518984006420994f73df2e898",
	"0a65c5a91623757790e9657d825a94f6c0de03a1586c766f2ca3187b43002b98",
	"00a9c4773cc74a64c2af724ecca754bdfa2dc50e557b4cfefc01642e4118fd87",
	"07f9123d84d98be5115fdf6620a583b94b175110134df920ca49e10b71daeeb8",
	"0066d2ae1db94fee882cff3235e6ea2e2aeb08fbe5c32cadf7dfcfd22f941f59",
	"0b2cca33ecb85206b444fced8a37dc0b125dd5cb82b14b8fbefa981bd9f4d38f",
	"0e9b59e6f4231d2ed66dc748979d70ac92371f72a376daa2631cc0692a2c3083",
	"0bec3f2e2c5b801dad55fa05ed70768816a8956a491aff7e640d78ec8d38fd3e",
	"089829dbd189ae253b503df7d9ddf4bbbbc3fd088d2987b57991c86ad0ed7703",
	"1155ba354b7004d3a74e356ed719d53af880e6e5456c59034916689e3c76a5c9",
	"0243e965315894f2725bd7416ccba16a4b1cdba3180c8ba857d287bbab37facc",
	"122afd09aeba32fd2cd05c238c29e30b8d7dc7cd227e6849937484c52743fc19",
	"105e6083d6b6c7346c662b3e22928c2f136a59d52252167df3712b197b1f335e",
	"09c63136b99d21b5b89547ef5498a1520c36976f8c76e9a4fc09e4a2afe2d205",
	"0b5c452b8fb4f44d1ba8ec10c5d432156f584808c54805842d675d9961423c33",
	"0c6f3f67476dadbf86feccc4462f512d84fbc9edc26f3894925a2b99f544becf",
	"026bf71b5573344970c3b34e501e30cae4db2fd1354cab860bb69158102edc31",
	"0b90e040374727a8e2134386159e52704e47f24f76549d760cac9b6040eaf14d",
	"0ab6ac5dbd47bf0cdb9d2fd701ecff6518535f7f71ba173aa0ecaad19a9bb847",
	"083b4118d04e2663c13f6fb0ec054c4dd37752edda4ea35b71298086fc8dc4ad",
	"093e2953b82cf50b807705886adfe6066a3d53e81fe9dd63786419de8068f182",
	"05a4d89cc5c915696b76ea6cabea51952bac8d856fb60cdbaf77858afcae235e",
	"0987d32d5ab078de07ed7ebd83e99fb53f7ba88842cac9eddbe6a78667ed0ba1",
	"00aa56cdb5fbebbe230f48ebaff7479a6784adb87230d28fd2d3d989abc729c1",
	"0a01e2bb6f8f3d9a9e796137f85d396384f41f4e04cd95b228d0657942d82e45",
	"0c8b9efe63741b9f26c21dc2dfa35a25fe889847eb4e2507248685925c8d7064",
	"017d1259b2b799fe607ad837f78e4fefaf88a0e69c96589a25c181a95e082a88",
	"0453e3a6f325ab7ca2ef1d3050be84a989183072e115231412e2207e18b8265f",
	"114957cc2d7ae8ac38615902392ef23e0d15919f7a0c54915e9412a9323a98ce",
	"0a687d48b8e6d35579031beef74d257672e0d14049cb727783342ee5e76a0070",
	"0c8d2a5142f60a0a0b8cdbf7aeafa44fa61b9816891da9402c3c214e5a1bf61e",
	"0f1d914b995c916e51cfdd988b66544bc6f98a431d14801a69f72bdaadcb8e26",
	"02e6de98971f737afa38e3804036460bf431d704d5ae10f98d06b45c41890b94",
	"07262e9bac0ed0107c6623af016bb99b89386dbb984120e9ffa719f6892e0236",
	"05c2e2bc6332588b5f0252e742bb958b09bc54987d34d07c76329072192773c9",
	"0b2aa30d0ddd3e2e7cedc05500ddecd83448615e67406b791505b9079ab22b93",
	"063c23acd09577ab585c0f80536538761c88d9f8ded2e4f2f38f64235391e7a6",
	"056d9e5e2f59e36ceeaa8159c1a05b3e61b59704522e63eaad9c4d55a4355311",
	"114b9cbb1b84e3bc44ca297b8578fcf7ce21f4f298dcfa4e1a74c769600795d8",
	"00433e0e2a59f383f691aacf384a8ade93e576b41611a78b0b4882dfe88b64ea",
	"11be656ffab6c3322ce41def274af631b81f0823d6dc5608afee94f9495a90e2",
	"0b338f2da2a61cc6aa442d81034450f7e5324f16d497b686236f5fcbea3c6b20",
	"0b8c8887480a5e02c3aede6c836040a63fb7e097940e9b6862e70c1266642890",
	"0512faf192deb3ebfa0e3f4f2cadb2411e32c7ffa284ba1934caac838805a022",
	"01d90ac637fd42d6d43a9c6bd5e6f9ed1ebbbea90808f551fb980a760cac6e85",
	"0ee638a05c8c5a5ea198368767c22bc71a1182578e2e997646c4e0978cfda963",
	"1076f6cce8d4947d5362a071d7886a02b50c2c8eecace41b7b92092bf186ba5a",
	"041b3ec6d6f0770ab9c47eeb8afaeec17ec264cfb76f30ea930df2dff6eba218",
	"015dfcdf0017ae8b1d1ffbd17ff8090064c722630ed50a9184fcc636d45ebabd",
	"0e84e9db24b3c43cac2979eb6629e131617b2a8e1112263128bbdabcb8050c6b",
	"08be882da2709b11b3607b6903f1e397223e00ecd343de324d7259f31ed01827",
	"004467de84a7acf9ec10e030d835e0e8ac44a1019d7fd13c778745c7b9bd9917",
	"0e988337bbc986ced888b74ca16caaade950e3cfd51a5f19e16134e275da5c01",
	"0d53f4df8e678c492bca674f6efdffcb4baaee2e01e0bf5c2aa8d3b56f64bace",
	"0734587f2f73cd6d61ed1f49c3239a98140bee66c8812519e751acf04c4cd4b3",
	"0bfc30043235b78fca16e50da5e20ac35557edd88f806a9606629492c6a85499",
	"07e182342da9e7cbc3621ad69f3e1a94000b75a2e946fbd39feb4d9420e8e786",
	"010a863d90362b60c80cd5a50589a6fb5576d9c95f8a1b9008e61616c0af2a49",
	"04d9e618e98c991f61f93d0f4fe94432986ba021eabb7e0c3694548fbce8a575",
	"0aca96ad13b04c89ca0086405d2784860d57624b7e30d47916b5f2a6f8364626",
	"0a57e230816388f46748a091891992251124a85217489cc252adcafda955bb85",
	"084aa4146f36789ab42adae436a0baefe8969351b009339f01518b1587bfa3e3",
	"0973b72119b77d8b91ee2e849a6d3fc6a4fa9aa099b290474538bacf07a3c14e",
	"109d245200af82c2ac4dbcab09646d9ea40a826e80696fbfaa424380e2d903e4",
	"0fe32d5e6b10ffcaaa4a0372f3506bf3ebcc9f84817dfaa367fdfcf1eb795949",
	"10203a35a445d206540c64b3ba02ba33431be9fe0101f466e9c514b5ef4da14a",
	"0cad216d87f7c8f0f96778cf61fcabe76ced54b62cebdc482be33526e474551a",
	"034cc4a4f2dd99049ed502c8688a04e46364d79cfd7787166a2483ea65229837",
	"0b806acbba32e86467b029fd9f37ae400fbe8625802b478f25185a36ac5fec7d",
	"0ca47b85e1dca55ca4d850e83ea750db29e4c4a9f212a431ded9b4f82583b1cd",
	"063163b2300d40c5a23360933d9d75095b57b6abd062fba2f3b23d7f0242805e",
	"06634a7c7dd269428e493c49bbd347ca3af14eb0ca819376f426a11714757a03",
	"07fdc692b124c026f86416740bee3c70aa87aee3f49d5092190eafd45916980c",
	"082b167ae0f4219e4570f0102c81ae4f9db59989000c8e45b5c04e3b5fff0bd2",
	"0bc0c74d6dbbc1e0e249c3bd17f97fd58b7db5bf61ee24b87556c96e1724844e",
	"12176ac90918be4a7ed1556641a89aa7ff8ba58ccc84bfe4edf5dbf8d6200d35",
	"10c161b68ff7c46f7d593accd99ce8f6b98a8c9c0629ae93f1265e45a32b3874",
	"0ad5793c7bcdc43bd1d8850fc2744e8e6f512dc0fa0f976682f24a3831aa5c12",
	"00f320d8b2d1fa3736f95c653580e9f21e12b6ec71c7dbd4cbc133ababb341d3",
	"0a519300bbe923fdc8cb93e2506a11d023c61b33497251625b3e63d3ce7e8520",
	"0b7f5853b9a9555b7ea57679b53f142eb2f83087afb7cc583205194289a05400",
	"05648be3f96b2c9d33e48a3889254f6de670ed1246576653d88a119b40582b30",
	"019ee5a51a4ab884c603c40224655e14ca96597f6fdcbddf6361c96143db332f",
	"0d8df15a39d36c4eeaa1ccc74c14a433f484a00b0ae6baeafa7b4ada5cb72b7b",
	"03f9ee80a7be7d05f1c33529495016ab99381a2eb849b3541d3eb228dec402ec",
	"0c249002488b9ce705a6bd0a645814a50c64b6d0c5871e68ed276cc7ef35c4ea",
	"082afa78f2ee2242b86a65577ff59a813c7f167a87d1dea6d5a74e45ce3dbb95",
	"07547bd60954209c412252e7ac934aece930d641475bb5b59c0d506c5f344b10",
	"10581e41b7ead8f50be22e6690e479732bed69d6c7f4ceeb4ba607273f7268ad",
	"09d28a11f4866c6f71df8c442740cf64260bab79c6c9879f10c668b753b224ca",
	"0c9ba2607e7435c846aa5c231e56d24287e83bf289bc33926cb2061ac78f7aa4",
	"023cd4e518642e6a0043e6f3c847fdd2cf446140dfbbd5edcb5f7b24c7517c1c",
	"01e125fcfd050f04d1149ed4797ee47869c2773806e93f693494e909d86bb490",
	"0430f47abccd500c3343b1d12101dcb8a1896b5e202011d310ebfdd15c060976",
	"1198d4f8ed467d2f375f146e143897d190c67574b1053670ff8c012c22e50e4d",
	"04994d62ba26f4dd8a99b4baa6f03984e56d46c61fc6ccb3e0d61ac5784b313f",
	"03c0b3fd4ca04024e92007ba9843d2e37f02d8ee028e37ee9ba73f8db6095973",
	"0de2f10ce191d2298ef3db869303ea7ef7b0047a08fb431b8775db179bb75d0a",
	"0fb659d6ce0a41e2d4af3d10fd0ebd3cade9d4efb6a0bdfe05f0a793018a3319",
	"0e5f3448fd098d55139e84843dc69bb5bf316b905ceda3a3b854a02fefd4ea83",
	"0504719fb6dc5156b0b2b69a6a6552f68465203c34c7ea492cecdf2995da6d15",
	"01b9bd637b5c8b2faeb9e5e5323d3ae91f3fcf1b8b1c564e8bb72e1cc7c3a9ee",
	"09db3e97d9a3736188550abe3b274d6bd3695f6dccfecea83d8ac0b92905ba3f",
	"0ac534c0547463b149b8dcec313da9f3e399db5f3c9bc29b242d003ed7201091",
	"1111369f82e0b73120fd5a43118269bdbca9d0c81b50bb983d02a8dcbf6f9b6d",
	"0a941a2dba143f8fcb7e2afabd36dfdf3ec1fab9bd7aff6d83daa230bb355bb2",
	"042a738041053a9a3198702bb920b16f949a01267f73979c58e3f30395a2a4a0",
	"0f3dab78f5c94f56b3e61d5d68876ca9d7423c5f339c180e78847f24dbbe0013",
	"02da01e50998ed3b799d4579613a848022fa85f34efb44213ecdffb007ef9352",
	"0b5cea39928068d671311fe62444d55951cb73bf473d741209a461235eab1cec",
	"12606636e7e7ab30003b7595f8086f88477b433d2e8e7159abebf51424cb6c8f",
	"0fd03b8b0b36a406c931977f57d0a4f44e1d640019c3066f8c6108e9b04a76aa",
	"04739e27a5528636b6af3f896432e2f5244ddca19580c68a9d3deac65468d029",
	"06a20ff2ef26eebedb5f7a9a750cd45331c7d1190832a316ec167b02f79ba0d8",
	"0a2bfd1134d5d912ea44b40ea0ca4dc160fed9d0fa4be9705e6d3d43084ca435",
	"1021600cfeb00086f8e2674810060b0d9ca6da17d4c13b7ba6625992d974abcb",
	"07ec55c261d81aea825409ab49a3811219c471a92890ca1a842c8a939c1d6a3a",
	"0223b7c7a9db4140048bb89b87d78a184a40a02bddaa0fb620ccb951da892931",
	"031155b700d6cae6dc6f62124422faae73b1dd2ad6eaf1eab5817fda083b5c4f",
	"027a9cd72a2e993073990deee1effea52fc768495e8876d8c791a42400fd5b58",
	"0bef2934712819446fe3ce88435b1440b5dc51363d73504c40923df1f912e659",
	"0f57f40f6813310415b67d9cede6ab0e776beeb30d1752501bd4242843fb04e2",
	"03525083494dbde089238722339aff8b86dbae2b04d70bc80da8da6bccd4aefd",
	"0df798194698805b44aecfc8cd0efd3d70b4c3afe6284fd4157f73d532232522",
	"0101be18e9037bbe6d0450355249c33386caf9f5dccc7f40d0dab278ba0f30bf",
	"1114f86f42a7983f549cde22bcf0b979280bf41cafe46037622d19eca330d7d7",
	"0d3ccf4e2ed84ca63ed65cb5f887f8ee28e84ee9de361a1cb25c9f031f47603e",
	"06df9d332dabdd11af2235aee6f95ba774eed1b5c12f3bab421dfc24c5e8a71a",
	"08485c1f75c96f569d3d58af83a254b30cb4d1f980854c0e9b9dbd90285806e4",
	"026743700146edce7b51e10fbcafe0850bdce57cc761fff85259d0c09bcbba73",
	"118743e1013acb0051864b5061b328b53c8e4dd0eac0633efa05d513dac643a3",
	"0508b3791afb18bcff734cba8052a985bd483f93469255cd59c592da9ff1f1a9",
	"0e569af099e6dda2ca912832975e9312ee3f658448e212dc1f4da426ad8e9582",
	"076bc657a8a83252d8c2b6bee65d1e116b36d27579b2d3aac7e6d505d4f278d9",
	"072780f0f26dc6f91e8f09cd5f346af23e9e156c58e53db19e834c522e3b8cf0",
	"0d79130ebc8eb102ac1dd13487bccc14e9c2db8c7ec85185bc9039da04fa7935",
	"0acb0598c54d338f338249225aeea01a920ad44e729a95d6c0303e2d0ec7d7eb",
	"091aac933e8fb021a1ab61e453e4b5405e89663c184beec68ce8719ed1efaf85",
	"0a167a768e6bd70ad351d59294942a44d5b15dd69c882f2948546b48ea21530d",
	"0457609350082128b930eac1322dc70223c23eae6819462f6b051c5d852b8d20",
	"001c1df0370b9d66d282d3a591d9220b1207bffe5c3efaeaf9c63ca490a5f33a",
	"05768aa32cd1df3f549db73ad88e08666d69194076f9fb61ac76a7f2a73d8b50",
	"0cdeb6e32200ed0eaace6c546342cf3cab3a776738107801a7a60f8a5e73108e",
	"0b3771719bb22ba27148032089505e5373c25fc82807838c73a25675cc63c6b8",
	"01c8744b131e910cdc7cf4ab7521e2716cce371182ce37a9d39c6e8f52414a6e",
	"11f1d36ede29e09df25f6d3dce3e8c8b7f4332033117342a5ae432989624ce71",
	"0892892f7f23f83ec36ca458fa45e69569c03600e9bca46b034a7e70efe725a8",
	"0b208a82b60b227db12ba849be0f4da8fae923bbf72a2b9f9080adb1b5160d3b",
	"073158d7d02c4952cbe771e614cee214478ceec77ea1d49e560536e2c09f6d88",
	"072e286ed611a124f24daeea8dafd1e5680aa23853088af6cd1cfef182e0399b",
	"0881d5aae268f109a74a7ca85c6e4c394ef07cc6cf9af31ccb41e83c9075367b",
	"0d570f30e62f2e16caf5b7ee3520301bb52865d6f1e43ef494d0ff3778d4d015",
	"01282a0125b042ebebe49b3ad10e579c56023fafb436768c5a87e38ec839c904",
	"023afda3a177db500abe31fc8669e783024eb873ba0e3ffd1fcceebac9e85498",
	"08f888d7f43c23e379d3ff04bb076b169a997a001afd76bd4394d87f554d1497",
	"034f2c8c540df6c44a71ba73de95585908b7f3d3aa89d2b4651d0ef5637797f0",
	"09c53e4975d8a1bbcbcedb478942fdb057ce82a1ec407dc3f4b23f0474a117f8",
	"0fe1cf04d1c6131876f2a8264ad784a4da13a472f08275ef8efa45649df353e1",
	"081139a6a6c93b86740be60162ad0d66886069eab234e99ff3708398c0697fd3",
	"0951818e9335d0ebe1bc9dda041c48c6b8710778775ce55f3cbe943c5554fddb",
	"07294b89660883702f643ecc3e01c0f21277b7d3643e1e3cf1604f4bf7c7f09c",
	"0114b4c1ee8c985fdbb4fbfa398ddcb439434dcc2f277911f64bd7a5cc9ffb70",
	"080d70ed089d66f2eaee986410347f27beabe710a9cb607639f33167a1213aad",
	"073befe848e80123aa202f9750588b3331f62fe98756971953b691de0c4afe72",
	"0ddc6fb3c4b66b2fa5ea0e8ef1d4d4feaa62f88dec3565e8358f367e96726c7e",
	"0f4290927f0ed469f9108432b4acc3b9eb492f441d758031b5039a2c433ea348",
	"06132b675886e8d245c7519084d7bc0606b654b9577c0daa98a302046371d56b",
	"07bebfb11b1054a8c4a598738d955a88922631cc622fc6762424216b5f91ac8b",
	"0721620a127c82afe42b345e48215ef0489230a20b734d9d0cd1bdc598bb3789",
	"09c72bc9d4bea60b7246f411be7766a1407d8a1bf898a1e69a2963fd2b87009d",
	"03920aa65605cfa8120e2df743e2e87c0bb7676fa9314ec8c41bdd17c48be218",
	"10fd64672e6f11af2cd3949f257746dd2d641aeaf3ec4adf3359f6f27f967d15",
	"104dd56291790128d490b7b256a0e7f174a4867c32ab51a654c6c062b2b8143e",
	"0bc8c521fe4ca7792ac02f7b462c8fe6efffd403bc3f2df21eac11d398957980",
	"01da28eb666d5a6509303fa9b66742b09420f41da082ec3d93a7a6043c3f807a",
	"05a24a543ae0e8fdb92aab791df3809309ce385e3566279511b54b1c44142882",
	"0ee4517b57fd2e5d86674de6f1c3f046ea167d4493337b5c4287843e0effcbc7",
	"035705c9567cd6af7be304ef5639d6749256ba39ea73781374e87d566af717cd",
	"0b806ed56f1325db69bdce62ac4906f62c97e92a3315aa96be274e6d166e3730",
	"0712c9c5c7d2e287861ec8cbf5d0fa58e712fe56fae9e99c20002cbeeb0727a0",
	"03dc7d3ec0857eb2261d72dedb680467f65ddd0a2ee87c5e2bf973308557d9c0",
	"063b48c39eaad2c582b18b43727bd2a377c3c74de01ccc0595fbac40ba7f2a4a",
	"00beec12cffc91ef3ae6add65c0ea80754a5d0c5b85b70e37ed7a86ec4017308",
	"1110415228fdba97e3a774f72a122e415b381c009504d99c6e4805754eeeed62",
	"079601a67ce26671537f39f0fe2ccd22a878483620040075982f452fd3e5cc4f",
	"0d01f3d691f254d1ab4a65c6f2fe0b3c0ed221198214ddb18e93e5a81ee9be88",
	"11b1f0ffc5910189de4360fca72608b6e0a352a6b14c92a2d22a7ec399176483",
	"0009f61bcdae455f3abac18a1e074bcbd87af9311accf7b35bebd24786b3bf98",
	"0af196b7f453000f87f04db52c6fad41f867f85fc99cf7a2d51e8d954ac14003",
	"0f4e2171e1e5f3d32c23fc516651944cbb312ac9e64e2c201f11efa32bfb9662",
	"0aaf0ae311cf2e7d195427d8114e1f030394a48525fbd91d2d34180ab3f19d95",
	"0c39dc15c9ae96a74b29e995eeace9cc4f72a4228c9c929520ede264ae98f5d2",
	"0b8d32d705c8b2ed1205d6c7bd5e5f110d70183c211c980aa1ae4ab069850fcc",
	"0f59c34d881d49f78e11c16ce40d1095524eccc9146228a156d2859ca810a16c",
	"07781748c16abf064776bebcb5ef4708158657caa20052832462e3258bf45661",
	"0c33a08a2a4e23975c3ed7c6f05bf6f931be3ecf6ae918e47c0ad9a281bee67f",
	"0a7e34e0e37ba8bf1a9dfcdf311dd04641e48683aae22b653812f074d34b82da",
	"0837258d69cfdd04588bd0f2e026ca79548ead370f6a34aa7a0846a1c2369038",
	"027134a9639f27968e11cd87c827af1797ece85c94576738aca1e6cfc07a31e3",
	"038eb656d702a7dd31126d775c54713549aa007303254f39c400ee2dcaf2064a",
	"081e2552417da8c50160a185a217fd4dc70b72f696fc1f2d78dfbf856af02206",
	"0325d867b0b8c99c75b043afefaccde4c5d1ff708f9c9306167febe2663ad66d",
	"1286e182263f002795e609f8dd949ccbe36b80a51270c4736b03bc9bcfba1cff",
	"0cac556e6dee08fc3dddfae17fe56506b30b27d190052785149644484cb9f0d6",
	"0ecb86859e3056a7995b0ead4a1d12616698723a1e8c7d8569251c07fb7448eb",
	"09c281a48de9a899b2224edc1285d45cf2cb9ce5a919ab332871dd6545103029",
	"0970ab1942b6c841a74e048f46989518bb1b10d08f82520a322afc0de50cce3b",
	"08cb0796bf6e8fa6673f8b6ba3817785cdae38134b202babb7b895fe7b89aaca",
	"015a354e899a202bb795e8326d01f01c2af134ae0f9a46713a84fed739b7dc48",
	"041dc906e545f551106e61ebfd5b2bb4e83c4448dc821aa6b64bf7d552fcdde6",
	"0f5d30517ebed47f67ed0c80750ea24dfe272cd9a2935a9d14a1681f195ba985",
	"05da3ac4ca1562016573912242ebf85efd778934894a57917c4cbc14455d0425",
	"0d83397c0372df4c21b478b22cfc4372c06409f11d2ab70144618e205cf47076",
	"1202919790f9f7b20498386d17d200758499357d7e829b1df07c6da798dbcc39",
	"0bdc68d7c0ad5174c59e749e495dd5a9e13150530608f96b83023a405969306c",
	"0d5e8f38aed37e188d331e58bcd86d729230b3216cd1e628b35aaf41570b5759",
	"107019dd78a00bf99b1229e2ada4ae18fd09167c22338dd9ec2d64388c67f5b8",
	"10c4c0d7a36572578a9d06a536b546022f46a31e372c2db9270b30d1784de5dc",
	"0d380634cc9c3445a287d9408cdff0dd2b382e35797fd5b55c491f3abd0af36e",
	"0c35a952c1a17809fc4e655ea7af92374f286ee0cbcc14794770727fdf943afe",
	"10f866b12ff0a3ae3ccbf4a3f6d8f660b5090b4cd372fd3760f0365a790724da",
	"00cfb30b1a9f9844fbd8329854887b890e90f3b8702288e989cb0c303bdb3888",
	"0cd49eeeeec5a61922715512286fbf812afa26d700170510f52d2844eef8e395",
	"129ad2d2f030cf4b2b557c6e7ec623856bad9408729e3c0f321a6ed738c8d4a1",
	"0270b5e2e7eb250532ccf7cee35f6930eb08445fb0be0cb557183309d1bb7210",
	"068e2a5bde9a450305ecf7e15d62117baa8ca18d84d94a12ac3f511461438574",
	"0e738e9efda8c9e16f5b941279268e05ad7e16d6c0433af63ffb88697e39c2a7",
	"001a10a1efc527ae1d93460906ddf041154ffbf379186deee0c46cd97509dd38",
	"10236edf11327f2e992c919e35f1c1e5a62c7783f8c0eb4c5efd4ea87a4e9faa",
	"121eaa35b92d0d80887875a9d9e25537b165fd721491ca2829899f02c41fabcb",
	"128168ae0586edf4366510ce562fdaba93bd65d86d294714aee87f188a444ec6",
	"0a0f7de527e615d240473604337044ddd645b6e6bdccd5dfde486cf9c899facb",
	"0d971923c8d3918036b0a704478c0f8befd3db8a67748fd6483077e7fdef7e74",
	"01527a8782782816b587d7df16f10a91446253e229400831fc78f9fa7a56b383",
	"0cdd43a9be9f96e5e00bc697571908ab9ac3b7608cd067f43216dacc9b9c8afa",
	"0dc97aa990d07c18cc0b7689e47c28c1ca3e52e8dc1a14cae822e068702a675d",
	"1197e1f07d81edaa1764d344d7b86fdae0ccf94d7c0bb91b43f022c58db02f5a",
	"06795a8c8c0634f1212ed3a4c64d5ff679c6105864143eface7394e8dfd0a2f1",
	"07bb31391fba0176c19f1a9af0275b47806674a02f64d67080e53e2cff4323c8",
	"0db7434c8ae025ae6ce02fdbf1123e1d7ed83b2261800f52ed1a07b5ce093aab",
	"060c72971f7a3fbb149973510ecf245d5fb1744d70e54d2c7a5478e03d574c0b",
	"00d10e8625833397ca22f26ab0e33a26d3c3bda802ef07e3becf56e77b2fce65",
	"035dda81677d2f2d273ca96a3a419be1d0078e42485289d63dc07c7f9fa399fd",
	"0d3778dcd0ce2cb91e8fd96f991eebbc3c3495a5815f998ddcba06bab530ae98",
	"00374e2fe9fbc879010192b5df567c7ca92940b56734366b93e2e9fcc0585aab",
	"07b673b183a3dc2bd4fb8e37745f1a55d168c0763dd340c6c4ab7ca7bd33103b",
	"0cc4e77a6c1a87ac62ca24d18b50a2b171d6e3977d3fe4a240ce9c12a68dc472",
	"0405f9894429a48788033a5cdc09b4a50b997ef9569ec448ee7f5d1cb220709a",
	"12796671844c4773cbd005793a6de770476f68a4b7a2dc1e339e5622ce98f519",
	"0a7500bb15e41ba52a273d8c93805b7543848f8d1631bcc5af5ac402bbccfe2d",
	"09f4265a16bb87d781bc8493a1109aa7eebc80090bdb4c2acf3f67b59ee7d737",
	"0c04ddd65674cb0669f70d6519432ca8100bb3bfc0de1dba9f54707ed4ff13dd",
	"0df51a072a3f9beafdd02e4118c94265e724eb482c7e0e294acc1a08c95eae09",
	"12ab5d6f69f83e21556b76586131f1b405261f7ba9eaa8ede80cae42b77eb9b4",
	"0c26228daa2564c2d9d4f5c18e51c5803574e733fa6970d6d4adcffecba11e51",
	"014f9eebbb1a0fa29b2f157865b078ab44641609b506c9a998b786e8cce0c4fd",
	"01a1a9c79264bd245630f88d95d0aeb54e8b1426063b962a0be98bf0c418aeee",
	"0c5027bc97762f1b3c8aecfca33cb56b07ad9bc529eaeaca8aba6a0c0b8934e8",
	"0db500108f3626cbc7d37f01f55cbab6faf1c03cc9765be11cdb10e61bf4bbba",
	"033d0a9d4b7b87aa2ba211bb3ebe3da91c424ee8bb75f38f43af34c5e7e52c04",
	"055d5e0311991236f38234f10a12a0079d1aff8e88c99b02577b9d6e1668b76d",
	"0dcee58f5099e428aefe5547585f79953fb5ba988eac08294d8bf9d45d0d2643",
	"04cee8f17c76e1dacc0923d46c0d8ec7b3dd605cbd666759259db94c7f72f9fb",
	"08e1bad40a4178a1ac87ddf2750f1a3c44163483b55f5811a0de89129f511437",
	"0ea914289eb6a60a48255cb7846370f7391d55ee685b09f80fdc27411b65ac95",
	"12a512083f365479e79af5f620de81ca4a0f94b21ce4b84d6942268005d5cca7",
	"076c4a606ad0499115673365e070d2284d3d27b815de7d60b343be33b44f45b9",
	"0711d90a122cf1ebe199b001f34483415670bfc5dd3117ad08dae15e70b98ab9",
	"0a0dd9efd5121123ea9bbf3c07bcbefd2c2c03573e281043baba64086f5b1aff",
	"0e95f0da2c9c9abd1a84ba2e9edfbe8c91762fa0f1138b81a0cbb1e52625f271",
	"12a0a37cc283c04d7bde1cbf931ab63ecb0bbbdcd9dd72d9690cd66317c1cbaf",
	"0f03db32f6b3bf6174e11501738f34c2f8577e8c1773446482d1acfbaf3cfce4",
	"0e4f80f5f4dcfb390a30513e2b92551ec9b37712756caf4fa3d3c2677eb25b40",
	"002c207e04460eca9b37a97982df058a7b28a8fdbf1d20c4dee6370b3cabe833",
	"0e9e3dcbce4377e86d20712ff2a04ab447eb8ad6ab04e6ee49ded02ed0bb7890",
	"02af07f99fa969bd6e29dbde09d00d0170677da80d26bac5166d90385446189f",
	"0e137a76f07f50ff7896800ce6e5b06e93327dc68c9d30b97ec28fb5bfdeea69",
	"05d860dd4f52067c135fed8fbed33e8247ce9a524e8d087231b74514c83cc956",
	"014301408d80447451c46559a79fe090ff9590de4bce8efab07300ad06019c10",
	"035428bba1ea4bd1a13691f63cecedf73f5cacf242062ce8b6977425cca0f4b1",
	"0b25ff10c6835711fff65a798b61f47989b469f7a4f6140cb08b5f25f347b6ea",
	"0f73c063af7499e197db811d5282385a1c9984c81161a82a9130db335e3078e1",
	"11827efbaac99dc5a991d1255c1c7a2812ee8aa15fb0f426b2329e846d7803c0",
	"1030f88093e327b8e2297c32ff9ecf15beec906491bcbc19cc2f8e0104b083de",
	"00c49dada7731ed0f16e3d5a5838e1c41a9bf16747b50c4b0251bc2e39996eba",
	"1180b1f3f1cc5ff476eb124072f135dfd2ffbe1515b98097284dcadce4feb841",
	"0dfa7880e1ff133094b803e9cc2f00507c1cbf205b65c11a5e52f062b1bcc522",
	"077eb44fe0b1c397b88c40b76e5f386fe293a5dbdff0b204d8b9a8d4862545d4",
	"10a06fe18c6f9c9ab81bb670836efb9a156a04185b2c74b86f8ebbfecd487944",
	"024973980bf216ac76dce37d512c5a9420444c7a53e9dfc95bc3398166aba5c4",
	"0f93420e60313a89906ef0ee8848f1f48c74851e7346cb4f5048f303c2b4dee3",
	"0645cedca5df4b73c0265b1003b44de8bc0e01230f049e551b67d5c69cf43609",
	"0ea0ad301905c50b157883c616a8c5462a60476a57dac666d94a84b03c18ebc6",
	"02386ad5ccdac2e26c6f751ab2a2b2d7b9bdfcc8dcf7028a0db5b66463df0ec8",
	"01b718ed1c156106832c751a083ac8b6670f04e4665cc3644832b3d2120af3dc",
	"007df9ed4235b2c7cc12fbc29bacdc3e6aa107dea3358c65e3343992c29b45a4",
	"018698f1aca120205723389da5c9e906946c5daa3282021b9c49d8932735eec0",
	"0a30954437fd84f80b4abd4be936d8699446a1417fbdbcae9d5d2e19ed03d731",
	"0a71c59b2648830535a7b792c3800f96e59fb9fc25085944f62a94df45abbf3f",
	"072e50b69d51e1a201653c9417cb3f6996fe142b7d8f38877b00f9ca30311a00",
	"0f3695e24ce162ca29e3c3595c984df8b7431b45248215cd8ed653013424c2f1",
	"108424c17cb21f4b380afaf4b86e5c62256bd5a1dcc7be0ed17cc4ccd0abd51d",
	"0c72a502a5779775d083a1fe019d3cbafbbb6f0a90dca188dd0ea5f59df576c2",
	"07e3f838455ad68f44ec41632de625532611cde3228395edc4c4661d91ffd8f5",
	"0c8cd80839e8bf4787490762a2797c0ee40d6e736dba6db0d1a9432691e5e5d6",
	"0ba26cfc2004d761e0273ca8922b0adbd67aeb89ad78e5c9ef01a59ff5645e35",
	"01ece41e480e96eac3a79a1abbfe7a34b148eadfb0f5a81875462eb982fd1653",
	"0dcf893f55203b526b5676cfab889fdf0754050eb15b2ea3ee97f9fdacb9c492",
	"0b80b56b337d1f3944db240e3feb61d7eb22bfa5ce1b721e5bbe33a2522090bb",
	"0065762bb802e75ae637e4c2d60a370df79939607dfd08e458942906052798ef",
	"0ee3e4974c76b002173cfbd0f2efa86ddce39120436ceee6514b25acad5f496a",
	"0e7d8f23ed127cce6f0d4f8b957a67dc74c4a9f1d8ede6b1c43235c8e4b6ac16",
	"06e588aa88c35231ab5bd15cd909a60496664d6ce3735f0fbb032ce360020dd6",
	"0ec6be98f96ee3cf1a3319484981bd6678ddd511a4a2454cd5bc6feaf989d2ee",
	"0974e21811d2b075cfc4241699c1bf49164827e6f8c02dfef80386c9d8f13e85",
	"0b4cbf1b2cb1f8a03b89b561be875f481b043ba3c25a674528e4d73b1cc9707c",
	"0c615583c0fc34dc38fba500814e512b13bab0f410fae4d5e8987237b35a59bb",
	"124332b4f6605ad47fc276eda7adb11a4e22a16812a6b8187e4cb1a67ca1ddac",
	"0b48d95918cc01543b80a23f6d2ce6cff6833c2114ad8a73738bd794f5deb099",
	"001f0655c740017bb18ba6f07d619873433f8810b7d369b17ffb9927b021536e",
	"1066a19898168903a88f76121b82115f6806b044a57f41fe4ce552234fac90dc",
	"0759adc0176df801a4f898effb689d2c77ac6f670045d5cd0b84d08e87d5392f",
	"069a0e7048970f52b4739fd234d2997daa33c583c2b387a911f41a0baca574fb",
	"0e80230d02fcc29a1c478d9bb9ddbabeed976efe908c161c0b7088230271f056",
	"0e75c4c4008d337f1d8e8a3f63ada9108e7ce5bd7245f6f27486297275c3c1bf",
	"10dd323ce1c9195b94561f255f58ff8f11006f16371f9849115878693e3f4964",
	"0d1026ed0bb92dda45dc3eb4af9778034c365251283180f2b17c2b8708ff7502",
	"058e747fa6ca51b70a6a2ef7af77c4b20b0e3f04d06d5bef842c52d7ff4bb6dc",
	"0e63feada7818257da36d0da0fd319cee840363d3cd3808bac3b518ddcfd7782",
	"00471913029d2fe2147f717463852f78a9c39efca6e3aaa68d4b9e1499afdbf8",
	"07719735886c94685dc9596b963a103fae38b1e52e19392f7c61594c534ae421",
	"0167fbaf045eb22a3b46c04c3185f6a6215a554fffbe1fae9f2cb923a611c4b9",
	"10cd274c8aecbe89d33b653344e14b4a8add6fc9dfb4315f7ae6a2b948e5d34d",
	"020bf2281f63e8ce5f429dff9a2de4b8575c62dd507b76d9354fa051ea23e411",
	"0dfd5d867bd2669105fa8f84eab8f656339e5ad433f166998294823bc831c6b2",
	"04999817066597899cb7d72f54cd0787a182287bcb4705a4d9cba338ded56514",
	"02146cfa11eb6b298014c6ed244fad333396021fc477a583832fc238c072081b",
	"09c1416317676ff1e6732a96da7020a8175a0d8515815fa2a508790c3154e99b",
	"1106bb111dc4a8c457269097b9b0fd558ed4f7b8a54baddd4be0764f8f319cc4",
	"08ead6e169142e8e4141df8c6c76da9c4fd699d428010d4eea49660384a52677",
	"0d27e0cfbf5d68e8c1af0f1b861fbb43938846e35033bc0db70f9bfde45ac67f",
	"04baeb3df664132e6b0b33969eda5259aee3b202768961af90a38ef723f91a67",
	"0fdd73afdc3e478445c2e79b4f9caef234123ce0731b2d3788fe5b4cf66255eb",
	"042be49a4683b07aec1daab32a3838666f9ac990645550335a3a849a2c300590",
	"03b6474da39653fff8ec4a55d9b4a9e4edb514aff614e8bd58654ab3e428d84c",
	"063b8fa6c7f5c93b96ca6145cf32c95808116c10892f6f64f6778aa01f0fb0e9",
	"090a26c32099b31ed94e5f4873d2e51b34663528789ecd9c77a4a6e17a47827b",
	"0f6f4cbe86bbad16003c41556e124f85ee3acbb082d7fe579e0d736e773374c5",
	"043caaa42d85e03116f03c139e22ff2dc36460db4ad3807c0be23fb14fc292c3",
	"081f6040b53f5814c7042e3e4e2e195223dd0d0e3a1705e90df782e3cc83ace1",
	"07c25d1ef13e214679dbdbf6fc70affedfae2e000df2a07b7cf47236ed32d93e",
	"08704d845519e62a1a46103ad4ede6c778b1a0d87eacb3499cd591296dff9cd0",
	"030666d958ca84bdf1eb07201199462de9a825a7ce9d60166dcc54fbe0fb30a6",
	"023fc46c488fb973f7f67d5b321f59f6613b30be5f8d49f19e2201497e482ea8",
	"0946de5e088b5bbec973450d6af6795537ca8eb48df989dcf5805a0cb998fe61",
	"097b215dd0fd53629355808f505a31b08301c4ec81dca04cf4c608f0d36b4be3",
	"04dda5ef9f6ddb5418af01268b1f6495c1f1f221044cd6ba7a3bfa2fbb7c6a7b",
	"07f35fd1831259164435d743cd3fdc24afc057c7eb642080776f1e82bd823034",
	"0128e1f41726c2fb8d9664dee041c49b293f9e35874060761f5a9fd3c13c7adc",
	"04fc0c10e1054334f575ab9ceda071c3e7833c55bb5947c3ae0e667c900cb07b",
	"02b6833e7c5b8a91c0a35eae983a30e57022b3844982e96288ae098fe5be161c",
	"0ba2b73ea738206f3e38db57300a481148682e88880ce202f6421dbd6cd31184",
	"062a6c95d23e845fe07d5fdcc5fc50c0184f133556f7a0b62573e89701f13cf0",
	"029b9189ff35d8a14b55d3428882b2f3d5f0ef5c7f410cd0a68dfe6c50104780",
	"0ac17aba0c7d69f87d5c59b7d23ab85dfd35a1203ac23aec6e6ad4106d909a88",
	"0f9ca1bd8e68d81220e47c9821ec187260ef9aaa72e5c7cbd09bf27b14478945",
	"06c229970ae56744b4f7978dfb4545fc438152ef8759fdcac1d47964e83be1fc",
	"0b24022ff32503ac85f558b9b37196b4a9636ad77fbb31f0d00e3ba633dd7aea",
	"0b7a6e91785caff30d4cf20eacdf0e9a3c39089af7a7a30e5731c60bd1504f56",
	"06cfb5b3bd82ad41edc80e6c6b37ccca3f6dd49be89a75f87da798f44b1a46c4",
	"0e38d33b1403df1542c44ab0207f7111662efe00d319afae5ff2c0561fee89ee",
	"00be324585218bd456d3613ef695d0afcaf4b4b7e020495c33b33570d1a8c621",
	"0aff44c17028ed843feaa13aeea4ec598767c4a4d34e625395ebdcd08cf90fa8",
	"0fdb55b1bfc6d55a1883a85941e33ce4c561e4480cf6ae411e54bb673c2835c1",
	"06445843ce0d68e42ef7073268658a6e1f0c62e1b198499437a99c27f9215edb",
	"0a91931970d1898b0210700c141a8d1a43c7ff736b0be2b08a377a4772e99c04",
	"05ed30e3e04cad8586b7efd634599eabfd90556635aedef5576d919ca659bfec",
	"10d2728a5fc802ffe7f003edc59ee0b7b3fcc8a2fc45b0278fe497d09fefd661",
	"001ae7f736188623d607bf4eccf2e3913e9c761575745f6650f5dbca72463359",
	"053fc15f9e0f53c0fbac695e2db9e3c6478f9b0154e886b52458f1ceecd1254a",
	"04692d29d508db8d0c290fbd13fed507acb3ed24528cdc183d11713cd07aecbe",
	"0b2d4f2a741d6136ce224993aaae623ac68664b1f6a47ac85a9d90106d6dceb0",
	"0bf55247a76ebce7995cf2001f02578bd721304a94a409c0083804662609a453",
	"08bab59760df41046ff1e6a2e1c9f89996aa2609ef8676a4c88579f169a1ff89",
	"049fce206de03dd1b02600dfb1c558689ed4d0ee3bd320ce99a9298e30244a99",
	"0b9d7384d5b85870c1882343c8bde74b6386b41ae8f2e7a89ce073d6acf63474",
	"08406b8cba5c0f9eba1de00dc9f5d8fda4e583b55ab9f1c63f9142501e3dd8d4",
	"100e6bff376a43ede15a333103df15112d098592e30849913a0c2b46ea42af1a",
	"11b9f37346d8effb30153f4f34745e2754a1fcfe82616d376b7b876734b22751",
	"09d54c4fc1934e05c1020c53a2d760de4d84d7c6117c28a9b22fa8d59fd6061b",
	"0cdb6e51f427fe7abbc9dd3178e32dfa13cdd234ca51e4093e8ad3597073e51a",
	"0f8f7eef547504054139c3ec0a640edd4e0c59868a8f8d6ccae72636609d202a",
	"09b87fcd2c349ffa3594549d4936576f44756f979f4315bede4cf7e73999b1e7",
	"092834107a16909f182a9772468d9ee667f2a84e9d86d0298f8bd7b9a3c80725",
	"06c8156227aff94dbfd94a888c3cafc3f11a00e3e528a2974ada392b6c715d10",
	"10d3082042815e63bba1f7e188c4de95b7dccbdc7d045feab0e4ad283a5c8567",
	"0b6e2be0f35e50319fa5b5bd1fe81e8f6c87804ffcf55a95155eca0379c71524",
	"045a8a1050a443691504c69a70721931649de0060acd4175e1751949ce4ec28f",
	"03993a19063fb0c3a2634dc27d6fce67ae2262345d4cf170f2c46bb5abc63b02",
	"10bbb0c40916b9940768a8bb93d82fbeefb07c17b9e8cd5df08b14dc70ef9543",
	"00418feab5f142dabe727d0fa109372888e426093c26ab2f7b93b3a93d951f29",
	"08ba1dbcd06be67eab050ec37f0d7783e3b49f04f13da6e3f84244743f2e83ec",
	"10e0f07723a5de6334cdacfd9a56f48119eefa5e2cfeb0e5b56dbed3f51b90fb",
	"0fbf40e8068c98da262af2e7a0f239a14accb0c4c39a52531f0f3588271eed80",
	"07141a330a692444479c11625964f85e1a40e8b8e6cee442259c2d1e42c93116",
	"0f5a06d33ac0a0e6094e670f45c23e1a973fef934a52f4487de5cdb670c8c156",
	"0153b41661a6e45e700ff15b7b68c9d4c53647cac8685dc226585a9157a8c806",
	"0e6dd7a82cdc5ad18621ad333103f908cdf28c6027a359110388bb21604ec944",
	"11a33f180adedce16816c62cc31830e8284f1f139edb1fe75929f85124ebd712",
	"017a7b9e615729d46ed11248338da297d3c3ca197496922e1474a8b5da396a8e",
	"0613adea4ddaf9b70edc4e1122f3d2c96a97ccc70c71c259a325f22712648e5f",
	"0ee80882537a9e75f737691162bebe021debfe4ed3d626ab83b2e0b370b563c9",
	"09dd9532833174ff1b68269a54b1d7919fbbcfb95a3c8327a9ba2584797d477b",
	"0912a412ade3c3116962fa973036f30eb88007a50467bbe3265ca68c58331d49",
	"0d4f791e9514f6990c1873e29f09511ae8b29a14017e06c247a24c173de80ff3",
	"10eaf1bea7d37fcdf790cccc248e47b48bdaecd5cc20246e74c2956ffa930760",
	"032d7a3baa23e0a1e195d6ad094761eea74d6d4db08eb8bc95a45e9bbc34f334",
	"01e8c7973279b4c5a3de922023700e17b3ae9ebf57eba3952a429e3c111c295a",
	"001a7d004e7012e090891fdd419788454629f3717bca0ff342ddc877843976cf",
	"0fc395fc5abb2bd007b41d8d20728c6d1035e38faee87177bf9d52bbc5e90bff",
	"0ca6e2a3a1088207b7dfd8fdcd6e7721959884d31287114b5592b53bb732cf55",
	"05e9e80f6363321cb0196c30cb208ed806638e1f3c7f40d3b8ecd5a684e9f6fa",
	"0c972a09cc996b9525875176ebeb020c182dcf06deddca860e32d4126b07746b",
	"07f714685a6b637df0eb577b48bd0cde3cfedc05be6cc53c6bb7af179249ff1a",
	"0968862773d47984fccbe91b6d0e0e5d0a7150ad14fc053283d421963703efde",
	"09d8e6a0aabae551821a9c5dbf0130f6b09380d44dc7dc12da9b59fe9ce9d611",
	"0ab66b516a8219325a5783b78415868949fb91ff7fb87fe37ba6b05f4616f9ea",
	"051232853262583877510731729458fbb8823e725c03587538a2058988ee8425",
	"087432d2c9d2c03ae191f8484e34fe1b9d1b2c703b1087932902850f436db304",
	"01a96aee83e585a2b4b3bab6ff735de5228e9bfe1958ea2a0ede411475ccf5a0",
	"01a85ba90ad347318ff4b0d4dd7be8c0f5c9238de3a5c7f47fbde684db26e791",
	"121a1025967d6257468dab607ba941cf0841fecd773e01fa2d5562d144a3608f",
	"088ff6035808f8df18d3bce667c7902272207cf0dd04f053ec64ed3b375c4fd3",
	"0839350782941e3001bceeea473d728d35866c80f0db4cd822d96a48db842e85",
	"1026375b8017b0712e5c85153e244c4058d73e3b2a05160d508b85699938bd09",
	"11a049bbe733c50a9c14d5ea15a8fee9a981109287553cc1fc8475b3d67a438c",
	"06cbca4316d2e651c3e21b60392e245a9c8ec34da268ba59969a78d55aec446c",
	"038d34af6af8548a05cbf6b9106464e886b4788c4cf9ac483d032dfc6b16702e",
	"05e84fc93dd9de9aa50b7e9875fd7a7a9f0a9564676bddf2eac3eb4a127f02b4",
	"0cd57f83d3c4d0666932908f749d18aa1fd2ab21fb307e5cfd433a8f0869edbf",
	"01a38eaef6d032d995a9fe16c3f6aac17887bfcaeb855abdd24a332abb2090cf",
	"1084153be92c74b28c66d0a59837317b5a573311e011d4bf5398db706e17ccac",
	"0fa689ed925ae00756a5691c27a32ecd0f351b06633b3c8afafc54a2b580a4bd",
	"03d6c1b9e836878eb77b725d2774f12914d1aad6c1a7a2d3a41e446b24e92807",
	"0577edfc8ac426a228d8db9ebea0bc05fb35bdda1eb3d041ec7a2fc783b4282e",
	"035577372052b0cadb59740e9e900c354a084af49a7608214a3af1ac98a13f79",
	"04e2681ba10c0f2badd453b2ae43a7db7bb8483d07d1717d9a7083089406e5b2",
	"06ae243e88f45b5b19cae81b82b9e93debed171be53075a867ea06968e2cb008",
	"0306ea877a9911ded04c78b0b70a36094b212c68ded8382f836f0f2963cbbd35",
	"126b0aa9ed9bacb3c846808b3cf2a6159b030c29fb56dd2e2d7c8ed7b526dec9",
	"1231c636b762d6c2dd4bdc9748bfa33278e7041cda234eb4c9f8d29632d75506",
	"11e8ce27e02fa9366a2c2212a288551dbfafb3eff77161841cdbb9db343e36e0",
	"125e96fae30c8ee9a4e6dbef1d3b5ad016a4e7e34ced6e4e1154dc2c45d6cdb3",
	"04517c8bd4cc76bd009f3b9040a24091db8dd5bbb04987c9ef4b812e36a82e69",
	"03c441a4f66c5fdf39b8125484f986f9f2721b5b587f3c2b87991ff60ecfa591",
	"0dea45a055dddcc1db6b36cbf5857e381d0aa03c13243a9ad214342b9c219794",
	"0e0e2123077699287646c086e8788b36372636b19f9b2d5a1568905632be87d4",
	"0a098cd2bb01f0740c38a048882f52a2d87ffaf96a4e42e2b66d361970c68c44",
	"07fcfe42b7447ea1e999f06384b708d3afda384439ca40a80402a323c3472eef",
	"0054d03a574b422412d6fea10b32142d10b6c516648037f9c0f0926bd346e4d5",
	"0f0b1d9fa1670226ba1061646c26f1b2ba90dba0f2570e97783056c942e0351e",
	"0cc0b146b67073843d7bba44bca575b9d292455bad5d8909a545e9ee20d87018",
	"0343c8d15f833ea76718361df30bc9e062d516f60cf86e33bffce968df99c17f",
	"0eea0c43bebd6b45b40773850d3105a73cd549d703e4a6a1b4db5c0bed425c10",
	"0ec312f9af71f79f6bb704169e68749ed37afb2dd2739508fdd6aaf158512472",
	"0edca4785e873d44a3ceb2f2f157d57632684117eb5e04fb5a6f70b47530c94e",
	"04285e60f4f9659c043e4eb8ac19070330536703d84c49a4c6f39020a4680c0d",
	"05e247741de3ba320f0ce6d32657393cdbc251e3010b00f960b895cc2025a73f",
	"0d262b5385bed7c97163a9f119baef5eaaac34072f4c09adc57bafca8b3f9dac",
	"0f09eb981d1a6038203ea980705bb3deafadbfc8011ff00ea59eb5aea24216bf",
	"107978a8b3898a24fff1e96f4c50cec20dd9bc646349dcdcdd9b7b253936e588",
	"066628fb6d7d4f036673fdd5da500ac7886b163647e18e805af91382abe66575",
	"0be9c4c19c672b7ddf2f2f324cd523a7895cc0aa616ec7b868993e3673b12c07",
	"04b0fae5fc551802b25e248332f01ac52f2727d63e40cb84eb8d11b32127e02e",
	"098658a0361697798a3995d878a10219743f91b827b744a1fba8908f22959873",
	"0f3fd0708ff85e6fb46a094bdb9ff8e96d5fd55bc1c59fbd41baa5a39a3e8930",
	"0bbf92f49c59213660c68f36d688f55b995c432299988c5113ddcff7f017f260",
	"0cc3137ec4c38b3e6772db9debd13120db7bd9d5e758b3bc8e0479c9bd643808",
	"04350ed4a4cbdc33b4b43c6cb6bd69f2b62af1337fd2a2ecf670d3e489f37b4a",
	"095541ff1394ee0c721abcff569919fe8f04fa389d38e25492b6b47dd0fd2bef",
	"05718b6a18b50b66d2df57ccf06cf1b0b06a7c0977b79eeb81d28127904ba88c",
	"02a3b36e9d32a32a70be819f15b7502299493e6bd210f9a1344d55c5c0cf3a08",
	"05b3f1fd201ddf259783009e8d02ffdeaff74722c6246c7757c1c99f55c7edca",
	"01769c0e3b2687121d31ff3228b89b6c4148c0cc88e4523ec626e7e8dbb93099",
	"02c681a4cd99597f8f9f7dd83ff10a27e141dfc6e8b36b6a4bdf03af3ba46936",
	"0574912b770b412f741630154fa9654e4ce0b3c80c5140a34cf96aba2713fbcf",
	"06e0df65c7b0bce961c61611c71de6e4db11ff9d2a0c4c98b4fed4a510c25f12",
	"0aa7198989cc90dda850d3824752621ff14302cf5ac9ec81c051888648f9a194",
	"03c50b56f929860991c89344c2a587d1dc3eafd57efb2a0d38fa75c19c3619af",
	"05c500c930f6017eb22659ecb69e4d65b76ff6403279a9571cfc1e18f958d183",
	"0b5907d62e07d07364e63b6717d4885863345fd78de9132fc5da3f02217676a2",
	"04bc1b51cce74c9a5e1668f4d56e2dff461321402f94693f39607cf99f37ffaf",
	"02281ad8b51b81de46baa509279937ca255a0b394bfe3ea2e736664d72a651d3",
	"06248e5a9f6c9e19199ec6567ae7b339f84b1948d4adba5058c8572da64ebbbb",
	"008de34e8eb158f9d3cad44b5323259591adebe443c48dfafba8d1d694482188",
	"0379e2f5bb024303e3baf56f8b00f6c534b573aab85d66bc1bdd9ea282382b3e",
	"06a020639be7df3d7ec05ea3187a41681c2824b2b89d8338ddb5bf70c71ea596",
	"0aacce4e0658b9c1a7d263ca3f91335bd421e14b18550c71f582ece28ae69a76",
	"0e38c5a9f78674eb9222b245347e9d148c0725599c4a047ebeef7264ba3feea1",
	"047c3316f850bc2fa6b85ae12b5b73800b3b4641f4ced948f08b2f74183d79da",
	"11b2b2c4390d96330ebf9759f2224a893b0b5fa5f1639b759c64f46e52adfdc6",
	"027c6624171418e09d61ad377d6b7c0ca86f4f70d1dc62088e98352f77182c59",
	"0f2a247f4a2ffcd7602f440370e66c4062c5bc62968351592fd4fba19cd8f9a4",
	"10581cd4b172210d0a6a161cfa25616d574c150f7f83ad7eacde9c7efa709658",
	"08f6db2de3d9fc5a5382c09f24daf2dbbd5fcd42d6c65d91ee1231ef4a3776b8",
	"0d7edd2680b9cc1064b37edb6558abf7290516b88f766305fd505eb824212f8f",
	"097251612685646bd753cb4f1744b373c89fc882f9a02e73ecb2b3534b5ac0e1",
	"0b7ca6def12ecef76715e6e909cf4c931b1df859724893fc86c580029f89bf14",
	"041e33e54bff16dbc48a9e93aea5f617aef144fff0c936ffd72bfa19621a3206",
	"0c3e5d1e0ac02ab63b788d76b60e6df2b1013897cba232b969fef7a6026b5bd8",
	"0d920f056824aa3266dfc1c5377c48ac59ec9b76f100e2af484afffc1c2bcf76",
	"07a3d6d3f0b92ab565bc65ac438d2d579b5e8d8f70ca6ba2a93990434f5da56d",
	"1216ba3f652766e6a0859332f7176e016022d68be1e081200358a1c99ee393a3",
	"06f81a63584cc57a834565c4e386b64aadd8c4ee89e40885dc56d1a94a966289",
	"0a32c89f79ba0cb7b906adf659aa5743901e4edda9a8c972d984719baf59333f",
	"0132d01844d0c3a45fe7a3740dd92662c9edf5d338fea9df669f36e7ac22c3dd",
	"0ae4dbcd1c2567db34d73756128b22146725e8f3debb7ce3b6b8d3ad2546eafb",
	"0b525a253d32f933f75347cf522ef6c92c5148bb0a5692325f1cee73a2b1f6de",
	"08648938846af822bfe417ce4b4495b3c43f913726b57846b9206dd6ec104863",
	"06703664b6f39d6c7f349b7be135fef6e86536571a3f521b51f95b37da0b7936",
	"055aad85d165e4f72e27f83cba0e0bb276f42ef3daad9d03a6db39a5360dd662",
	"11fdee1d285f09e776c82d7f637eda771e740371db03e5cfa502e0c4a1aaa6ba",
	"0d29d9a31c84ecd9cef39cb2c80ba47512926f8b98f4393d0120f6977c90fb11",
	"0bd5353f249b31ea091bb231348f1890e3a0d117db4df9c1cdff1dffb99d840d",
	"11870fd6b01a3957844fad82211f5d3bc908a8e7b87cee92f6c880285d5b245f",
	"01fd871e99885c44e23c3ceaeabfe460f75072ae7d3fcdfccf6ade3641081341",
	"071513a640916f62b24a84e1e3b56265be83b2330596bc791a36f5390f9a3e65",
	"04b6707c9382357a7e91d161cf4390269d65abed0a6e2e5311b8510fe9b18890",
	"021b1dc3d119683365709318a603823f66cfe6f61dd3541c5b6ceb74a40e4669",
	"07fd63e715e5a3e04a131288fbe7a01fa2ef4ac4fa1a44fa047fb18187cde98a",
	"02c2f9ec1b4effde8838f53b34186043c616ceb7512838da3d1887014f3a709d",
	"0caa788e37ef20b49a3fb4038145a0efed26aaa0109b5b7c930a7b58256edf41",
	"0aa6155275dfda3c89cf934695c9c1fc439e3c6db6b9c8f2f93ea725deb78aea",
	"0163bc602c1639092abf08e01264f06d4ef680599d66bb0bb7712aabba69811c",
	"06e64300b82dab1346234db36171043d21ebd834e6c0d749c95749fdab393f8d",
	"052cffdcc74be4b9bb40044337d06b2a3bb11a5dadc8fe6f163b1589963bf9f6",
	"08a9051929cf9dc7f818bdcfe23c875152a551dd77adbd36fa02ee945910e5c9",
	"05634af34925eb6c58432b26f15afef84efb7d500fe52fd2b9cb079e9b6e6fb2",
	"0f98fc3cb853f740ea836de246117716c8035e4455676b2ed88db5ce533c0f5b",
	"00c3422bd4fa54afd0a2b0f7b340697c021c54b0341aace08414de2fc450a12f",
	"06b6b528ca57607a47ec2a872eba2520a7688c6cb4cf7fe33844852700b6cfca",
	"1162d0704bcf55d75923cbd4806926303bf970cbeeefc71cae95ecc3d4cd7945",
	"05000a822015904c012f981fc5eb1606c1de6318253fe209303c3e63f0a4e39b",
	"06a19dc004af3b91762a0cc76970ec8fdfcf8291c2bace8b83979aa02ccff363",
	"049af84c7be6667dce79e751829b5aa735dd12171aa20fc558dde726977237dd",
	"05add34f34ca75ecbf3c7ba142ac5cfb83991104506f0a26d8d40968f746dc47",
	"1001c3bebb34cff3b22bfca72aa7c672f75a23e9bfc1fbab0f1963f0da1ce74e",
	"12568b7864b01767a7d8f105c27f0a63e34c26b97d87c126d4407efe309fee62",
	"07addd0f7241c10dc87b7fe4d2f977ef1e595594944493741b6cb91ae56622de",
	"0fc6fe0cde2e3122a3424c1b2b4df9ae5efd8f0dcb1a6818a243e5bd8215af1c",
	"025222295f9b17c49a0b76ac4ee67f3daebdd17c6dfb157ccef282d015d25f94",
	"00c6cb33e2c084fd4d2591cb4c9d708ff02a96f8fa95c06cf06f77675d0b0ca6",
	"081e09960aaef3881cde992942b0b61c945f9d9d5bda3bc00f3615a38f0e3536",
	"0f62db242865850825ce42e0e733401e889ac7ce1c8a6fbbe6996496dbd15438",
	"00efe87dc7b6bbe348912eee40b55e0d7d1db306717c037a34a6cbcab6dcda1d",
	"038f5ade86734a83ab2da3ae7b789abf164f70f0c285012d64918cf75a28cadc",
	"002b291a5feae9bd5e388c6f579e950f411a3663b5c288c06dd8a947da374e5b",
	"02a05906f923612f999da976c713964b17060083e37d3e068c399c710f8de923",
	"03eb29717abad8aca79189f8bbf5a65c55cec182472c44ad863d7453f0d12d0d",
	"09580b7826fdf449d19550fbaba20ba628ca764512af53e1088d1dce0ba5da15",
	"124567e92daf69ebb7d3c5e730805d5424b575b2010dbb457c36ed60cd0d3769",
	"119320945ab258f2ff89d44799af0601ac45dbff5c407ad2417b713ddb693757",
	"09a5222030b9d09b3e658b1e1940cb9a5d0ddeac7cd6f2267ba4a6dc9d5c05b6",
	"0fcc196569cf5b4270f5638b550b4dbb552a48dfebedfac18c95e24df32e85bc",
	"0a29adf8bd1e39aa556c9f68a84730b3e38d48e6246832ccf1758ed36b245f59",
	"1139a05321b4cebaae1ae8ad91a7a50fd6bb323fd791d67b8e46e62125c05052",
	"00eaf9d69ae54f7717ce5fd0d2a0fc9dfb565ef92cb8f71c76ec5c54ea37b5c5",
	"0ddf3539b622cab78d7b54cf54b11793890d086847653d00cce092869a3160e3",
	"113bc74028eddeaa7dea3b6e2c89fb87fb3884dd6f8aa53a4497769c1c7d2714",
	"092484a8ab9679ed54521b6a83f4ad74e5af76ce4bc169d24506b37320429fcc",
	"030da2668714f9c5b820bc58bedd45f016963b0692cf302a5cabab81cb8f6447",
	"123a5289f8de305fb368b2f35882de6ede10f46b578d0868eb1b256a475e330f",
	"0d86e2c590d952d48139349a7abeb156b9c04a478890230ff35b89a95cfecbf3",
	"0cb413796bbf9f1a35ad7f32159ed84bdc9fd4a1dba31ef995e9c6569697c9b0",
	"0a618e9b201b3d2a5d69ad599fd4f10b737c96c4f20ad7b1928d0ce3033fdb18",
	"0c9addf9a486d4a5ccfcfa617c3c374306c6c4fc8a537de0b50decd2dd0b2bed",
	"04c6f09abe44cc92af3322ba6167c6cca1e6ed4ddd8f497e2a4aad16e1bc7409",
	"024c8c5d556bb5e2aeebaedbdd54bf9fc0a7cb89d9c5bd2845013d003ea34f66",
	"095df6c8d31184e8b144f820616e5c383e311ae1f22e37c7ac4ca3af6e344e5f",
	"0090477fb41f8c96a5a7ae4658290e4bc33fa2f7aa53d6d563764ac9b467c6d2",
	"0be974786202e91e65f6ce4bb071855b0d0efe7d15340dc8574950144494a92c",
	"07d4f340822c37149fbfe36caf8a42a153edf46ddeb20e7d8814743b9af1ab1f",
	"0e94a4a1217daa758f88882f83397198c2ec05086ca42d79051f5ee770e2b553",
	"0e8350017d838b05c403989852f1401fdd1614bb69cc42264f884585f3fc90c9",
	"0dd38df9fa2edd574c73677e8c962ed05e57e6f778222278d5319214a50a8cfb",
	"0b25e80ee71cf4f10b1c6aa74ae179f46e2c1a00949a73fa205e745858762bf5",
	"0f235d127cae6f3df1b57e7c49395c4188d957ebf884d0dfca76a636f4b80657",
	"0e6d16799a29a45e476f8472a9ae253964cd49ae37a9eccb9341810666b52daa",
	"0a908697337ec6d1baaef1732975c771103754964f8ac972642c483be8f8d673",
	"0c6785914fa9e9d4ded7c3ad3dc6f361f5a4203656d46599ff052dda0fd67dc6",
	"03fdb6c4f170590119f7205a884f2b07e4fc2780bd90d20ad9cbeef6c9d15dad",
	"09224b3e262cc2134a7105d648e501f0acf8e6943d858c891500b521b44e043c",
	"031bdc305b0f2df8508c5cd78309b0b48e2575f3c6a861863cf15ab833441325",
	"09e32ba8f485e59318384a02c6453270ea19758bbade086dd33514daafad6dc7",
	"0f1d11a432b075648f0f38dc820fbc46825cb263078476a7193f826d0dcb19f6",
	"0df683a18ed18a889bd6c2bab41ab23fa5c88274b95a30a03caad9bf45a4e0d9",
	"0c4656608241fd3332a6fa7c1d6ab113e0e55b2d05f35f02a5527dd15ac1841b",
	"0ddfffd96003807e5513ba00288489f439c5dc9ed6c69836bd92849136efba7a",
	"08d144ba7aa3dac8211284740234f1e5ee250e14590b69722faaaf69f37039a6",
	"095f900111af70cfe5a55988d84f886883144d9d48b43a2848f2050ab0d6ef0c",
	"07f1a502444d884a3f60355352ad1b2975e29f5da6cfb40988a26dbd62112f67",
	"0b7b942b10fdd9c3fee03c1c621db4401f0e18f8b2684110999c1fdc14ae52f1",
	"08f07781b40c61ee0d85a5eb01114fbdb733c8bd2a5bd336252b785ae47954d9",
	"0b53f292578c76fea0360f404dd26394d3f9f44c2ed1d003e54cb7a0715b5548",
	"03ce0d800b61da7d5c4a939dd3bed0a8b66576dc90d023d70dd0e4b0b0612a2b",
	"0594e78cd55f86fb20c449789a09057c76dfca5b38a9387a3d52568c7c661351",
	"127d05978e4575d344418e27a649e758d7ff50e1638b0c829cafddc00f5ed789",
	"00aa4472896abde34606f2f5464fd7027c1124a301582cfa71deff701a63e676",
	"0d7d15629da8b2283981c51982e20c61dcb8d95b1c80dc652188972dbca6511f",
	"03bccf87fed5e587a864bb0885af487b6f373ddccb4846602f987f2f671c5862",
	"027e1d7d4b5bc60dde86388a8c0f5eea82fdd5bb6e3b05be0df46c9a31e010c4",
	"0af141b3355cd64e6963b0929547019c44534d1acff85075428f56fd61e01bc6",
	"10f5f4330a0dbd1cb608415bb2f5c70645ed621e421bd3b1aeb3a1178242a0a0",
	"08c95eef0d136249363f123845164e028b6fe24b136564ea4c66dc4605aa3479",
	"0a0be42f87a7131817ad6ebf41e22dfce7319c3fa7e5bc6bce8cb0e2bf001860",
	"12676b4feff287d6680860ecee55f5f665bbe4ed4aedc2b7b3227aebdfb55314",
	"101f060348210b1b27b8919d1979b0933a2f823791ae766fddf7e62cce19a023",
	"0a7caa029875dc19324cc73efa5cf062cff3f0e07f02339df5b85d9aeb240358",
	"03835c55c0269fad203670a61cd7da8dc24010dc771e13d89b98658ddfaf53c2",
	"05774782a8314e49a7e24177a704f0a995e4cd1a08ef6626496475868bc378b8",
	"0ed7f593ad479bcb314afae9ed957f8b6bf830c801a8fc7b3c6eae042882cb4a",
	"08c45f52fd7a377e4b2c8cf3b8ef196d2bc14c40ca0586d7429fc0fd881d0adf",
}

// mdsEntries is the row-major width x width mixing matrix (Cauchy form,
// x_i = i, y_j = width + j).
var mdsEntries = [][]string{
	{"0f8ed479807a89c7fb40eaeea22e6801200e0dd458000000ddb9400000000001", "1000a007f1dd2000e52cd4632a78e0012848f84820000000e40f000000000001", "1055f8b2c6e710ab949dc37a90b0ba012e75281ef6000000e8cf500000000001", "0a5f38510051b12ffcd5f1f46c1ef000c0095e8d9000000093d0d55555555556", "10cd74d5245b619a8a3bdf01b965519ad0b304b22199999a890fc00000000001", "051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c"},
	{"1000a007f1dd2000e52cd4632a78e0012848f84820000000e40f000000000001", "1055f8b2c6e710ab949dc37a90b0ba012e75281ef6000000e8cf500000000001", "0a5f38510051b12ffcd5f1f46c1ef000c0095e8d9000000093d0d55555555556", "10cd74d5245b619a8a3bdf01b965519ad0b304b22199999a890fc00000000001", "051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c", "111d1cec0d53978f2dfa9c067f330c013cdc426994000000f3e5600000000001"},
	{"1055f8b2c6e710ab949dc37a90b0ba012e75281ef6000000e8cf500000000001", "0a5f38510051b12ffcd5f1f46c1ef000c0095e8d9000000093d0d55555555556", "10cd74d5245b619a8a3bdf01b965519ad0b304b22199999a890fc00000000001", "051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c", "111d1cec0d53978f2dfa9c067f330c013cdc426994000000f3e5600000000001", "113bc0088e50989e80a66e922dbd40013f138188c0000000f59a000000000001"},
	{"0a5f38510051b12ffcd5f1f46c1ef000c0095e8d9000000093d0d55555555556", "10cd74d5245b619a8a3bdf01b965519ad0b304b22199999a890fc00000000001", "051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c", "111d1cec0d53978f2dfa9c067f330c013cdc426994000000f3e5600000000001", "113bc0088e50989e80a66e922dbd40013f138188c0000000f59a000000000001", "115602b34604e2aba2f090c0c358480140f9b7a378000000f710400000000001"},
	{"10cd74d5245b619a8a3bdf01b965519ad0b304b22199999a890fc00000000001", "051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c", "111d1cec0d53978f2dfa9c067f330c013cdc426994000000f3e5600000000001", "113bc0088e50989e80a66e922dbd40013f138188c0000000f59a000000000001", "115602b34604e2aba2f090c0c358480140f9b7a378000000f710400000000001", "116cc502f64bcd83d1b9590b4500c667a9058021066666675ebb000000000001"},
	{"051778bcb5af15d1bd48721f8d838d17a41737b9dba2e8ba771c0ba2e8ba2e8c", "111d1cec0d53978f2dfa9c067f330c013cdc426994000000f3e5600000000001", "113bc0088e50989e80a66e922dbd40013f138188c0000000f59a000000000001", "115602b34604e2aba2f090c0c358480140f9b7a378000000f710400000000001", "116cc502f64bcd83d1b9590b4500c667a9058021066666675ebb000000000001", "1180af08b089db00faa9084c76743501440fcf8ee3000000f970680000000001"},
}
