package dataset

import "github.com/takasapp/takas-admin-api/internal/models"

// Fixed content pools. The generated dataset mirrors the Turkish swap
// marketplace the admin panel manages, so all user-facing strings come from
// these corpora rather than from lorem text.

const countryName = "Türkiye"

var turkishCities = []string{
	"İstanbul", "Ankara", "İzmir", "Bursa", "Antalya", "Adana", "Konya", "Gaziantep",
}

var districts = []string{"Merkez", "Kadıköy", "Beşiktaş", "Çankaya", "Konak", "Nilüfer"}

var firstNames = []string{
	"Ahmet", "Mehmet", "Mustafa", "Ali", "Hüseyin", "Hasan", "İbrahim", "Osman",
	"Yusuf", "Murat", "Ömer", "Emre", "Burak", "Kerem", "Deniz", "Cem",
	"Ayşe", "Fatma", "Emine", "Hatice", "Zeynep", "Elif", "Meryem", "Şeyma",
	"Esra", "Merve", "Büşra", "Gül", "Ceren", "Selin", "Derya", "Ece",
}

var lastNames = []string{
	"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Yıldırım", "Öztürk",
	"Aydın", "Özdemir", "Arslan", "Doğan", "Kılıç", "Aslan", "Çetin", "Kara",
	"Koç", "Kurt", "Özkan", "Şimşek", "Polat", "Korkmaz", "Erdoğan", "Güneş",
}

var streetNames = []string{
	"Atatürk Caddesi", "İstiklal Sokak", "Cumhuriyet Bulvarı", "Gazi Caddesi",
	"Fevzi Çakmak Sokak", "Barbaros Bulvarı", "Mimar Sinan Caddesi", "İnönü Sokak",
	"Bağdat Caddesi", "Zafer Sokak", "Yıldız Caddesi", "Menekşe Sokak",
}

var emailDomains = []string{"gmail.com", "hotmail.com", "outlook.com", "yandex.com"}

var categorySeed = []models.Category{
	{ID: 1, Name: "Elektronik", Icon: "phone", Color: "#00aae4", Slug: "elektronik"},
	{ID: 2, Name: "Moda", Icon: "shirt", Color: "#5E35B1", Slug: "moda"},
	{ID: 3, Name: "Ev & Yaşam", Icon: "home", Color: "#4CAF50", Slug: "ev-yasam"},
	{ID: 4, Name: "Araç", Icon: "car", Color: "#F44336", Slug: "arac"},
	{ID: 5, Name: "Emlak", Icon: "building", Color: "#8884d8", Slug: "emlak"},
	{ID: 6, Name: "Spor", Icon: "dumbbell", Color: "#82ca9d", Slug: "spor"},
	{ID: 7, Name: "Oyun", Icon: "gamepad", Color: "#cf1322", Slug: "oyun"},
	{ID: 8, Name: "Anne & Bebek", Icon: "baby", Color: "#ff85c0", Slug: "anne-bebek"},
}

var turkishSentences = []string{
	"Merhaba, bu ürün hala satılık mı?",
	"Son fiyat ne olur?",
	"Takas düşünür müsünüz?",
	"Ürünün garantisi devam ediyor mu?",
	"Bugün kargoya verebilir misiniz?",
	"İstanbul içi elden teslim alabilirim.",
	"Biraz indirim yapabilirseniz hemen alacağım.",
	"Ürünün daha net fotoğraflarını gönderebilir misiniz?",
	"Teşekkürler, iyi satışlar.",
	"Tam aradığım model, ayırabilir misiniz?",
	"Merhaba, takas teklifimi gördünüz mü?",
	"Kutusu ve faturası var mı?",
	"Neden satıyorsunuz acaba?",
	"Ciddi alıcıyım, dönüş yapar mısınız?",
	"Profilimdeki ürünlerle takas olur mu?",
}

var turkishDescriptions = []string{
	"Ürün çok temiz kullanılmıştır, hiçbir çiziği yoktur. Kutusu ve faturası mevcuttur. İhtiyaç fazlası olduğu için satıyorum.",
	"Sıfır ayarında, sadece birkaç kez kullanıldı. Garantisi devam etmektedir. Alıcısına şimdiden hayırlı olsun.",
	"Ufak tefek kullanım izleri mevcuttur ancak çalışmasına engel değildir. Fiyatı bu yüzden uygun tuttum.",
	"Yurtdışından hediye geldi, pasaport kaydı yapılmıştır. Yanında kılıfı hediye edilecektir. Pazarlık payı vardır.",
	"Acil nakit ihtiyacından dolayı satılıktır. Takas teklif etmeyiniz. Sadece ciddi alıcılar yazsın.",
	"Kozmetik olarak 10/9 durumdadır. Bataryası yeni değişti. Sorunsuz çalışıyor.",
	"Taşınma sebebiyle eşyalarımı satıyorum. Diğer ilanlarıma da bakabilirsiniz. Toplu alımda indirim yaparım.",
	"Ürünü anlatmaya gerek yok, bilen bilir. Tertemiz collectors item.",
}

var turkishReportMessages = []string{
	"Bu kullanıcı dolandırıcı olabilir, ödemeyi yaptım ama ürünü göndermedi.",
	"İlandaki fotoğraflar ürünün kendisine ait değil, internetten alınmış.",
	"Uygunsuz içerik ve küfürlü konuşmalar içeriyor.",
	"Ürün açıklamasında yanıltıcı bilgiler var.",
	"Sürekli spam mesajlar atıyor, rahatsız ediliyorum.",
	"Kargo ücretini ben ödememe rağmen karşı ödemeli gönderdi.",
	"Ürün orijinal değil, replika ürün satmaya çalışıyor.",
}

var turkishSuggestionMessages = []string{
	"Uygulamaya karanlık mod gelmeli, akşamları göz yoruyor.",
	"Mesajlarda sesli mesaj özelliği olsa çok iyi olur.",
	"İlanlara video ekleme özelliği getirilmeli.",
	"Kargo entegrasyonu yapılarak takip numarası otomatik düşmeli.",
	"Daha fazla kategori eklenmeli, mesela enstrümanlar.",
	"Favoriye eklediğim ürünlerin fiyatı düşünce bildirim gelsin.",
	"Profilime kapak fotoğrafı eklemek istiyorum.",
	"Harita üzerinden ilan arama özelliği çok kullanışlı olurdu.",
}

var turkishBios = []string{
	"Teknoloji meraklısı, dürüst satıcı.",
	"Sadece İstanbul içi elden teslim.",
	"Takas tekliflerine açığım.",
	"Her türlü elektronik ürün alınır satılır.",
	"Güvenilir alışveriş.",
	"Hızlı kargo, özenli paketleme.",
	"Bana sormadan ürün almayın.",
	"Öğrenciyim, uygun fiyata bırakıyorum.",
}

var productTitlesByCategory = map[string][]string{
	"Elektronik":   {"iPhone 13 Pro Max", "AirPods Pro", "PlayStation 5", "MacBook Air M1", "Samsung Galaxy S23"},
	"Moda":         {"Nike Air Force", "Deri Ceket", "Kışlık Mont", "Çanta", "Saat"},
	"Ev & Yaşam":   {"Kahve Makinesi", "Robot Süpürge", "Airfryer", "Masa Lambası", "Halı"},
	"Araç":         {"Araç Multimedya", "Kask", "Araç Kamera", "Lastik Seti", "Akü"},
	"Emlak":        {"Kiralık Daire İlanı", "Satılık Arsa", "Ofis", "Depo", "Villa"},
	"Spor":         {"Dambıl Seti", "Koşu Bandı", "Bisiklet", "Pilates Matı", "Spor Çantası"},
	"Oyun":         {"Nintendo Switch", "Oyun Kolu", "RGB Klavye", "Gaming Mouse", "Monitor"},
	"Anne & Bebek": {"Bebek Arabası", "Ana Kucağı", "Biberon Seti", "Mama Sandalyesi", "Beşik"},
}

var hashtagPool = []string{"telefon", "apple", "takas", "moda", "elektronik", "oyun", "ev", "spor"}

var changeProductPool = []string{"MacBook Pro", "iPad Pro", "Bisiklet", "PlayStation", "Kamera"}

var notificationTitles = map[models.NotificationType]string{
	models.NotificationSwapOffer:       "Yeni Takas Teklifi",
	models.NotificationSwapAccepted:    "Takas Kabul Edildi",
	models.NotificationSwapRejected:    "Takas Reddedildi",
	models.NotificationProductViewed:   "Ürünün Görüntülendi",
	models.NotificationNewMessage:      "Yeni Mesaj",
	models.NotificationFavoriteUpdated: "Favori Güncellendi",
}

var notificationTypes = []models.NotificationType{
	models.NotificationSwapOffer,
	models.NotificationSwapAccepted,
	models.NotificationSwapRejected,
	models.NotificationProductViewed,
	models.NotificationNewMessage,
	models.NotificationFavoriteUpdated,
}

var reportCategories = []models.ReportCategory{
	models.ReportBug,
	models.ReportUser,
	models.ReportProduct,
	models.ReportPayment,
	models.ReportOther,
	models.ReportSuggestion,
}

var recentSearchTermSeed = []string{
	"iphone", "takas", "bisiklet", "playstation", "airpods", "mont", "robot süpürge", "macbook",
}

var bannerSeed = []struct {
	Title       string
	Description string
	TargetURL   string
}{
	{"Vitrin İlanları", "Öne çıkan vitrin ilanlarını keşfet.", "/vitrin"},
	{"Kış Takası Başladı", "Kışlık ürünlerini takasla yenile.", "/kampanya/kis"},
	{"Güvenli Takas Rehberi", "Takas yaparken nelere dikkat etmelisin?", "/rehber/guvenli-takas"},
	{"Premium İlan Avantajları", "İlanını öne çıkar, daha hızlı takasla.", "/premium"},
}
