package model

type seedCard struct {
	front, back, category string
}

var seedData = []seedCard{
	{"You may not believe me, but I did get full marks on the exam.", "信じないかもしれないけれど、私は本当に試験で満点を取ったんだ。", "強調・倒置・省略"},
	{"What in the world is he going to do?", "彼はいったい全体何をするつもりなんだ？", "強調・倒置・省略"},
	{"I don't agree to this plan at all.", "私はこの計画には全く賛成しない。", "強調・倒置・省略"},
	{"Nice to meet you, Meg. Do sit down.", "はじめまして、メグ。ぜひ座ってください。", "強調・倒置・省略"},
	{"How on earth did you come to that conclusion?", "いったいどうしてそんな結論になったの？", "強調・倒置・省略"},
	{"It was John that married Emma in June.", "6月にエマと結婚したのはジョンだった。", "強調構文"},
	{"It was Emma that John married in June.", "ジョンが6月に結婚したのはエマだった。", "強調構文"},
	{"It was in June that John married Emma.", "ジョンがエマと結婚したのは6月だった。", "強調構文"},
	{"Never have I heard such a moving speech.", "これほど感動的なスピーチは一度も聞いたことがない。", "倒置表現"},
	{"I'm thirsty. — So am I.", "喉が渇いた。― 私もです。", "倒置表現"},
	{"Only yesterday did I hear the news.", "つい昨日、その知らせを聞いたばかりだ。", "倒置表現"},
	{"On the wall hung a large poster.", "壁には大きなポスターが掛かっていた。", "倒置表現"},
	{"Money is important, but more important is health.", "お金は大事だが、もっと大事なのは健康だ。", "倒置表現"},
	{"Meg can play the violin, but I can't.", "メグはバイオリンが弾けるが、私は弾けない。", "省略表現"},
	{"While in college, Bill started his own company.", "大学在学中に、ビルは自分の会社を立ち上げた。", "省略表現"},
	{"Contact me anytime, if necessary.", "必要ならいつでも連絡してください。", "省略表現"},
	{"Kim will, I believe, help me with this project.", "キムは、私の思うところ、この計画を手伝ってくれるだろう。", "挿入・同格"},
	{"Mr. Brown, our biology teacher, is very strict with us.", "生物の先生であるブラウン先生は、私たちにとても厳しい。", "挿入・同格"},
	{"The memory of my dog makes me feel happy.", "愛犬の思い出は私を幸せな気分にさせる。", "無生物主語"},
	{"Her advice enabled me to solve the problem.", "彼女の助言のおかげで、私はその問題を解決できた。", "無生物主語"},
	{"The storm prevented us from going on a picnic.", "嵐のせいで私たちはピクニックに行けなかった。", "無生物主語"},
	{"This story reminds me of my childhood.", "この物語は私に子供時代を思い出させる。", "無生物主語"},
	{"This bus will take you to the airport in one hour.", "このバスに乗れば1時間で空港に着きます。", "無生物主語"},
	{"Hiroki is a good singer.", "ヒロキは歌が上手だ（上手な歌手だ）。", "名詞構文"},
	{"Take [Have] a look at this picture first.", "まずはこの写真を見てください。", "名詞構文"},
	{"Rika is a good speaker of German.", "リカはドイツ語を話すのが上手だ。", "名詞構文"},
	{"Do you know the reason for his anger?", "彼が怒っている理由を知っていますか？", "名詞構文"},
	{"We grow vegetables and flowers in our garden.", "私たちは庭で野菜と花を育てている。", "接続詞"},
	{"Both Kate and John are on vacation now.", "ケイトとジョンの両方とも、今休暇中だ。", "接続詞"},
	{"This coat is not mine but my sister's.", "このコートは私のものではなく、姉のものだ。", "接続詞"},
	{"Go straight, and you will see the station.", "まっすぐ行きなさい、そうすれば駅が見えます。", "接続詞"},
	{"Put on your coat, or you'll catch a cold.", "コートを着なさい、さもないと風邪をひきますよ。", "接続詞"},
	{"It is clear that the system has a problem.", "そのシステムに問題があるのは明らかだ。", "接続詞"},
	{"I hope that you'll like my present.", "あなたが私のプレゼントを気に入ってくれるといいのですが。", "接続詞"},
	{"Jim cooked dinner while his baby was sleeping.", "ジムは赤ちゃんが眠っている間に夕食を作った。", "接続詞"},
	{"Don't forget to feed the cats before you go out.", "出かける前に猫に餌をやるのを忘れないで。", "接続詞"},
	{"I've had a headache since I woke up this morning.", "今朝起きてからずっと頭痛がする。", "接続詞"},
	{"You won't catch the bus unless you leave at once.", "すぐに出発しないとバスに間に合いませんよ。", "接続詞"},
	{"I'm very hungry because I skipped breakfast.", "朝食を抜いたのでとてもお腹が空いている。", "接続詞"},
	{"He spoke English slowly so that we could understand him.", "私たちが理解できるように、彼はゆっくり英語を話した。", "接続詞"},
	{"The movie is so wonderful that you should not miss it.", "その映画はとても素晴らしいので、見逃すべきではない。", "接続詞"},
	{"Every time I watch a movie, I feel like eating popcorn.", "映画を見るたびに、ポップコーンが食べたくなる。", "接続詞"},
}

// DefaultCards returns the bundled seed collection with freshly generated IDs.
// Used on first run and when recovering from corrupted persisted data.
func DefaultCards() []Card {
	cards := make([]Card, len(seedData))
	for i, s := range seedData {
		cards[i] = *NewCard(s.front, s.back, s.category)
	}
	return cards
}
