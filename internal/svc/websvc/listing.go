package websvc

import "github.com/mkrupp/catcafe-web/internal/domain"

// cafeListing is the shop page's content table. The rows originate from a
// one-off review export and are served as-is; the site never edits them.
//
//nolint:gochecknoglobals
var cafeListing = []domain.CafeEntry{
	{Name: "猫不理·猫咪咖啡·布偶猫舍", Rating: 45, AvgSpend: "54.0", District: "海琴广场", Deal: "190元 四人撸猫套餐（十六岁以下不接待）"},
	{Name: "喵小院猫咖The Cat Coffee(五四广场店)", Rating: 45, AvgSpend: "36.0", District: "万象城", Deal: "39.9元 晚场17-21点单人撸猫套餐"},
	{Name: "春夏秋猫咖啡·猫咪主题咖啡馆", Rating: 45, AvgSpend: "34.0", District: "长江路沿线", Deal: "无"},
	{Name: "狗窝窝Gowow·羊驼·猫咖狗咖", Rating: 45, AvgSpend: "76.0", District: "万象城", Deal: "88元 1-3楼单人通票·撸狗·撸羊驼·撸鸭·撸猫"},
	{Name: "六月猫咖·英短猫舍", Rating: 50, AvgSpend: "43.0", District: "台东步行街", Deal: "39.9元 撸猫单人餐，提供免费WiFi"},
	{Name: "三月猫咖", Rating: 45, AvgSpend: "45.0", District: "新都心", Deal: "99元 双人套餐，包间免费"},
	{Name: "Coffee Meow 米奥猫咖", Rating: 40, AvgSpend: "29.0", District: "正阳路", Deal: "19元 喵星人单人饮品，有赠品"},
	{Name: "柴圆滚滚猫咪咖啡", Rating: 45, AvgSpend: "40.0", District: "中央商务区", Deal: "39.9元 单人超值撸喵体验券"},
	{Name: "布偶猫咖(台东步行街店)", Rating: 35, AvgSpend: "25.0", District: "台东步行街", Deal: "36.9元 单人撸猫体验，包间免费"},
	{Name: "Café de DARI 达芮.猫咖啡馆(新城吾悦店)", Rating: 40, AvgSpend: "52.0", District: "海上嘉年华", Deal: "无"},
	{Name: "一树喵生撸猫下午茶猫咖啡馆", Rating: 40, AvgSpend: "46.0", District: "维客广场", Deal: "68元 单人限定静享下午茶时光套餐"},
	{Name: "福至猫吉·海景猫咖", Rating: 40, AvgSpend: "33.0", District: "融创茂", Deal: "无"},
	{Name: "猫在云端•猫咪咖啡•布偶猫舍", Rating: 30, AvgSpend: "无", District: "丽达购物广场", Deal: "72.8元 双人撸猫套餐5选2"},
	{Name: "喵町物语·宅猫咖", Rating: 45, AvgSpend: "36.0", District: "湛山/太平角", Deal: "78元 双人撸猫体验"},
	{Name: "杨小喵猫咖", Rating: 45, AvgSpend: "31.0", District: "维客广场", Deal: "55元 双人人套餐，包间免费"},
	{Name: "柴岛日记·柴犬狗咖·猫咖·海景咖啡店", Rating: 40, AvgSpend: "44.0", District: "五四广场商圈", Deal: "128元 双人暖心撸猫撸狗"},
	{Name: "Gowow狗窝窝·楼上有猫咖(五四广场店)", Rating: 40, AvgSpend: "69.0", District: "万象城", Deal: "无"},
	{Name: "妙喵屋猫咖", Rating: 35, AvgSpend: "29.0", District: "青岛路", Deal: "49.9元 撸猫双人套餐，提供免费WiFi"},
	{Name: "海边的猫和咖啡馆", Rating: 45, AvgSpend: "50.0", District: "湛山/太平角", Deal: "无"},
	{Name: "你和猫&猫咖", Rating: 35, AvgSpend: "43.0", District: "石老人海水浴场商圈", Deal: "[猫咖]71.9元 双人撸猫券"},
	{Name: "一只狗的猫咖馆·爬宠·阿拉斯加", Rating: 40, AvgSpend: "42.0", District: "中央商务区", Deal: "45.5元 单人撸猫撸狗·爬宠互动体验（谢绝16岁以下儿童）"},
	{Name: "Sweet cat·星愿猫咖", Rating: 35, AvgSpend: "31.0", District: "长江路沿线", Deal: "25.8元 单人撸猫套餐，提供免费WiFi"},
	{Name: "小巫咖啡馆", Rating: 45, AvgSpend: "54.0", District: "湛山/太平角", Deal: "无"},
	{Name: "晴天猫星球·猫咪咖啡", Rating: 45, AvgSpend: "69.0", District: "新都心", Deal: "68.8元 暖冬单人餐❤，提供免费WiFi"},
	{Name: "朵猫猫撸猫咖啡馆", Rating: 45, AvgSpend: "44.0", District: "新都心", Deal: "49.9元 单人撸猫套餐（14周岁以下不接待）"},
}
