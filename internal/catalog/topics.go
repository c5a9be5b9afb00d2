package catalog

// Morandi palette used for topic tiles.
const (
	ColorCream    = "#E8E0D5"
	ColorLatte    = "#D6C8BD"
	ColorMocha    = "#A6988D"
	ColorTaupe    = "#9C8F85"
	ColorSand     = "#F2EBE5"
	ColorEspresso = "#5E5046"
	ColorPaper    = "#FDFBF8"
)

// DefaultHint is shown when a question has no hint of its own.
const DefaultHint = "试着闭上眼睛，回到那个瞬间..."

var defaultCatalog = New(defaultTopics)

// Default returns the bundled twelve-topic catalog.
func Default() *Catalog {
	return defaultCatalog
}

var defaultTopics = []Topic{
	{
		ID: "t1", Number: "01", TitleEn: "Self & Identity", TitleCn: "自我与身份", Color: ColorCream,
		Questions: []Question{
			{ID: 1, Text: "如果必须用一个“不断流变的自然现象”来描述你今年的自我，你会选择什么？为什么？", Hint: "例如：一阵风、一条正在解冻的河、一座正在风化的山..."},
			{ID: 2, Text: "哪一个你曾坚定的自我认知在今年失效？它是如何碎开的？"},
			{ID: 3, Text: "你最不敢直视的那一部分自己，正在向你传递怎样的讯息？"},
			{ID: 4, Text: "如果真实的你是一束光，今年有哪些角度被遮挡了？"},
			{ID: 5, Text: "如果你能删除一个“预设的自我设定”，你最想让哪一部分获得自由？"},
		},
	},
	{
		ID: "t2", Number: "02", TitleEn: "Desire & Choice", TitleCn: "欲望与选择", Color: ColorLatte,
		Questions: []Question{
			{ID: 6, Text: "哪个你今年一直想做却没做的行动，其实藏着你最大的恐惧？"},
			{ID: 7, Text: "如果你必须牺牲一种欲望来让另一种欲望显现，你的交换是什么？"},
			{ID: 8, Text: "今年最“违背直觉却正确”的选择是什么？"},
			{ID: 9, Text: "今年你第一次意识到“想要”和“需要”之间的鸿沟在哪里？"},
			{ID: 10, Text: "哪个你差点跟随的冲动，让你现在想起仍心惊？"},
		},
	},
	{
		ID: "t3", Number: "03", TitleEn: "Time & Memory", TitleCn: "时间与记忆", Color: ColorMocha,
		Questions: []Question{
			{ID: 11, Text: "如果你能擦掉今年的一段感受，而不是事件，你会抹去什么？"},
			{ID: 12, Text: "哪一刻你突然意识到自己已经悄悄改变？"},
			{ID: 13, Text: "哪个最平凡的瞬间，却成为今年你记忆最柔软的地方？"},
			{ID: 14, Text: "你最害怕时间带走什么？又最希望时间替你带走什么？"},
			{ID: 15, Text: "如果只能把今年的一帧画面送给未来，你会选择哪里？"},
		},
	},
	{
		ID: "t4", Number: "04", TitleEn: "Connection & Intimacy", TitleCn: "关系与亲密", Color: ColorTaupe,
		Questions: []Question{
			{ID: 16, Text: "在亲密关系中，你最害怕被他人看见的那一面是什么？这种害怕来自哪里？"},
			{ID: 17, Text: "你在人际关系中最常使用的“自我保护装置”是什么？"},
			{ID: 18, Text: "哪一次误解反而让你更懂一个人？"},
			{ID: 19, Text: "有没有一个时刻让你意识到原来你需要的不是“更好的沟通”，而是“被更深地理解”？"},
			{ID: 20, Text: "当你靠近某段关系时，是什么让你犹豫？当你拉开距离时，又是什么让你心软？这些力量分别来自哪里？"},
		},
	},
	{
		ID: "t5", Number: "05", TitleEn: "Vulnerability & Strength", TitleCn: "脆弱与力量", Color: ColorSand,
		Questions: []Question{
			{ID: 21, Text: "哪种脆弱被你误会成软弱了很久？"},
			{ID: 22, Text: "你最骄傲却很少提及的成就是什么？"},
			{ID: 23, Text: "哪一刻你感到“我被理解了”？"},
			{ID: 24, Text: "什么时候你意识到勇气不是继续，而是允许自己停下？"},
			{ID: 25, Text: "哪个隐藏很深却一直指挥你行为的恐惧终于被你看见？"},
		},
	},
	{
		ID: "t6", Number: "06", TitleEn: "Failure & Adjustment", TitleCn: "失败与修正", Color: ColorCream,
		Questions: []Question{
			{ID: 26, Text: "今年最让你难以承认的错误是什么？"},
			{ID: 27, Text: "哪个你以为绝不会出错的地方却在今年崩塌？"},
			{ID: 28, Text: "哪次失败替你关上一扇你其实不该进入的门？"},
			{ID: 29, Text: "如果那件事可以往回调一个细节，你会修改哪一步？"},
			{ID: 30, Text: "今年你真正理解的“代价”是什么？"},
		},
	},
	{
		ID: "t7", Number: "07", TitleEn: "Chaos & Discipline", TitleCn: "混乱与秩序", Color: ColorLatte,
		Questions: []Question{
			{ID: 31, Text: "如果允许你的混乱全权接管一天，你会做什么？"},
			{ID: 32, Text: "哪部分生活最难驯服？它像什么？"},
			{ID: 33, Text: "你今年建立的最微小却改变性的秩序是什么？"},
			{ID: 34, Text: "哪个看似理性的选择，其实藏着混乱的核心？"},
			{ID: 35, Text: "如果今年的人生是一首乐曲，最走调的音在哪里？"},
		},
	},
	{
		ID: "t8", Number: "08", TitleEn: "Creativity & Expression", TitleCn: "创造与表达", Color: ColorMocha,
		Questions: []Question{
			{ID: 36, Text: "今年你做过最“艺术家式”的行为是什么？"},
			{ID: 37, Text: "你为表达一个想法，做过哪种反常规的事？"},
			{ID: 38, Text: "哪种你从未尝试的创作方式最吸引你？"},
			{ID: 39, Text: "若你的人生是一本书，你希望今年的章节标题是什么？"},
			{ID: 40, Text: "如果你做过的一件事能拍成电影，它会是艺术片还是商业片？"},
		},
	},
	{
		ID: "t9", Number: "09", TitleEn: "Body & Sensation", TitleCn: "身体与感知", Color: ColorTaupe,
		Questions: []Question{
			{ID: 41, Text: "当你说“我累了”时，你的身体真正想说什么？"},
			{ID: 42, Text: "哪个身体瞬间让你感到安稳或自由？"},
			{ID: 43, Text: "哪个瞬间你意识到身体比头脑更诚实？"},
			{ID: 44, Text: "哪类感官体验让你最觉得“我正在活着”？"},
			{ID: 45, Text: "你最忽略身体的哪个声音？"},
		},
	},
	{
		ID: "t10", Number: "10", TitleEn: "Values & Beliefs", TitleCn: "价值与信念", Color: ColorSand,
		Questions: []Question{
			{ID: 46, Text: "今年你坚持的哪一个价值观让你付出代价？"},
			{ID: 47, Text: "哪堂“成年人的课程”你今年才终于学会？"},
			{ID: 48, Text: "哪个被你放下的信念又悄悄回来了？"},
			{ID: 49, Text: "哪些地方你比自己想象中更坚定？"},
			{ID: 50, Text: "哪些信念你意识到已经缓慢过期？"},
		},
	},
	{
		ID: "t11", Number: "11", TitleEn: "World & Future", TitleCn: "世界与未来", Color: ColorCream,
		Questions: []Question{
			{ID: 51, Text: "如果今年世界寄你一封信，它的标题是什么？"},
			{ID: 52, Text: "如果能改动未来的一个微小变量，你会调整哪里？"},
			{ID: 53, Text: "哪条你今年才明白的世界规律让你释然？"},
			{ID: 54, Text: "你希望明年世界对你温柔一点的部分是什么？"},
			{ID: 55, Text: "如果知道今年的你正在影响未来十年，你会改变什么？"},
		},
	},
	{
		ID: "t12", Number: "12", TitleEn: "Meaning & Direction", TitleCn: "意义与方向", Color: ColorLatte,
		Questions: []Question{
			{ID: 56, Text: "哪个瞬间让你突然感觉“这一切现在都有意义了”？"},
			{ID: 57, Text: "如果让一个问题引导你明年的生活，那会是什么？"},
			{ID: 58, Text: "哪个意义你今年意识到已经不再重要？"},
			{ID: 59, Text: "如果你的人生是一项研究，今年的假设被证实了吗？"},
			{ID: 60, Text: "在今年结束之前，你最想向自己确认的方向是什么？"},
		},
	},
}
