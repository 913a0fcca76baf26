package i18n

var texts = map[Key]map[Language]string{
	KeyWelcome: {
		LangEN:  "👋 Welcome! Please select your language:",
		LangRU:  "Выберите язык:",
		LangZH:  "欢迎！请选择语言：",
		LangID:  "Selamat datang! Silakan pilih bahasa Anda:",
		LangFIL: "Maligayang pagdating! Mangyaring piliin ang iyong wika:",
		LangVI:  "Chào mừng! Vui lòng chọn ngôn ngữ của bạn:",
	},
	KeyPitchDeck: {
		LangEN:  "We have prepared a presentation of our project for you. You can review the materials again and, when finished, click the button below to confirm. Thank you for your attention and interest!",
		LangRU:  "Мы подготовили для вас презентацию нашего проекта. Можете вновь ознакомиться с материалами и, по завершении, нажать на кнопку ниже для подтверждения. Благодарим за ваше внимание и интерес!",
		LangZH:  "我们为您准备了项目演示。您可以再次查看材料，完成后点击下方按钮确认。感谢您的关注和兴趣！",
		LangID:  "Kami telah menyiapkan presentasi proyek kami untuk Anda. Anda dapat meninjau materi kembali dan, setelah selesai, klik tombol di bawah untuk konfirmasi. Terima kasih atas perhatian dan minat Anda!",
		LangFIL: "Naghanda kami ng presentasyon ng aming proyekto para sa iyo. Maaari mong suriin muli ang mga materyal at, kapag tapos na, i-click ang button sa ibaba para kumpirmahin. Salamat sa iyong atensyon at interes!",
		LangVI:  "Chúng tôi đã chuẩn bị bài thuyết trình dự án cho bạn. Bạn có thể xem lại tài liệu và, khi hoàn thành, nhấp vào nút bên dưới để xác nhận. Cảm ơn sự quan tâm và hứng thú của bạn!",
	},
	KeyReviewedButton: {
		LangEN:  "I have reviewed the pitch deck ✅",
		LangRU:  "Я ознакомился с питч деком! ✅",
		LangZH:  "我已查看推介材料 ✅",
		LangID:  "Saya telah meninjau pitch deck ✅",
		LangFIL: "Nasuri ko na ang pitch deck ✅",
		LangVI:  "Tôi đã xem xét pitch deck ✅",
	},
	KeyEnterName: {
		LangEN:  "Great! Please enter your full name.\nFormat:\n • Use English letters (numbers allowed)\n • Provide at least first and last name\n • Each name part should be at least 2 characters\n • You can use comma to separate name parts",
		LangRU:  "Отлично! Пожалуйста, введите ваше ФИО.\nФормат:\n • Используйте английские буквы (цифры разрешены)\n • Укажите как минимум имя и фамилию\n • Каждая часть имени должна содержать не менее 2 букв\n • Можно использовать запятую для разделения частей имени",
		LangZH:  "太好了！请输入您的全名（可以使用中文）。\n格式：\n • 可以使用中文字符\n • 请输入完整姓名\n • 姓名至少需要2个字",
		LangID:  "Bagus! Silakan masukkan nama lengkap Anda.\nFormat:\n • Gunakan huruf bahasa Inggris (angka diperbolehkan)\n • Berikan setidaknya nama depan dan belakang\n • Setiap bagian nama minimal 2 karakter\n • Anda dapat menggunakan koma untuk memisahkan bagian nama",
		LangFIL: "Mahusay! Mangyaring ilagay ang iyong buong pangalan.\nFormat:\n • Gumamit ng mga letra ng Ingles (pinapayagan ang mga numero)\n • Magbigay ng hindi bababa sa pangalan at apelyido\n • Bawat bahagi ng pangalan ay dapat hindi bababa sa 2 karakter\n • Maaari kang gumamit ng kuwit para ihiwalay ang mga bahagi ng pangalan",
		LangVI:  "Tuyệt! Vui lòng nhập họ tên đầy đủ của bạn.\nĐịnh dạng:\n • Sử dụng chữ cái tiếng Anh (cho phép số)\n • Cung cấp ít nhất họ và tên\n • Mỗi phần tên phải có ít nhất 2 ký tự\n • Bạn có thể sử dụng dấu phẩy để phân tách các phần của tên",
	},
	KeyInvalidName: {
		LangEN:  "Invalid name format. Please provide at least first and last name (minimum 2 characters each):",
		LangRU:  "Неверный формат имени. Пожалуйста, укажите как минимум имя и фамилию (минимум 2 символа в каждой части):",
		LangZH:  "无效的姓名格式。请输入至少包含2个字的完整中文姓名：",
		LangID:  "Format nama tidak valid. Silakan masukkan minimal nama depan dan belakang (minimal 2 karakter setiap bagian):",
		LangFIL: "Hindi valid ang format ng pangalan. Mangyaring magbigay ng hindi bababa sa pangalan at apelyido (minimum 2 karakter bawat isa):",
		LangVI:  "Định dạng tên không hợp lệ. Vui lòng cung cấp ít nhất họ và tên (tối thiểu 2 ký tự mỗi phần):",
	},
	KeyEnterAmount: {
		LangEN:  "Please enter the token purchase amount in USD (numbers only). Minimum amount is 10,000.",
		LangRU:  "Пожалуйста, введите сумму на покупку токенов в USD (только цифры). Минимальная сумма 10000.",
		LangZH:  "请输入代币购买金额（仅限数字，美元）。最低金额为10,000。",
		LangID:  "Silakan masukkan jumlah pembelian token dalam USD (angka saja). Jumlah minimal 10.000.",
		LangFIL: "Mangyaring ilagay ang halaga ng token purchase sa USD (mga numero lamang). Minimum na halaga ay 10,000.",
		LangVI:  "Vui lòng nhập số tiền mua token bằng USD (chỉ số). Số tiền tối thiểu là 10.000.",
	},
	KeyInvalidAmount: {
		LangEN:  "Invalid amount. Please enter numbers only (e.g., 1000):",
		LangRU:  "Неверная сумма. Пожалуйста, введите только цифры (например, 1000):",
		LangZH:  "无效金额。请仅输入数字（例如，1000）：",
		LangID:  "Jumlah investasi tidak valid. Silakan masukkan hanya angka (contoh: 1000):",
		LangFIL: "Halaga na hindi valid. Mangyaring ilagay mga numero lamang (halimbawa: 1000):",
		LangVI:  "Số tiền đầu tư không hợp lệ. Vui lòng nhập chỉ số (ví dụ: 1000):",
	},
	KeyMinimumAmount: {
		LangEN:  "Minimum investment amount is $10,000. Please enter a larger amount:",
		LangRU:  "Минимальная сумма инвестиций $10,000. Пожалуйста, введите большую сумму:",
		LangZH:  "最小投资金额为 $10,000。请输入更大的金额：",
		LangID:  "Jumlah investasi minimum adalah $10,000. Silakan masukkan jumlah yang lebih besar:",
		LangFIL: "Minimum na halaga ng pamumuhunan ay $10,000. Mangyaring maglagay ng mas malaking halaga:",
		LangVI:  "Số tiền đầu tư tối thiểu là $10,000. Vui lòng nhập số tiền lớn hơn:",
	},
	KeyEnterEmail: {
		LangEN:  "Please provide your email address where the SAFT agreement will be sent for signing via DocuSign. Make sure the address is correct to avoid delays.",
		LangRU:  "Пожалуйста, укажите ваш email, на который будет отправлен SAFT договор для подписания через DocuSign. Убедитесь, что адрес указан корректно, чтобы избежать задержек.",
		LangZH:  "请提供您的电子邮件地址，SAFT协议将通过DocuSign发送至该地址进行签署。请确保地址正确，以避免延误。",
		LangID:  "Silakan berikan alamat email Anda di mana perjanjian SAFT akan dikirim untuk ditandatangani melalui DocuSign. Pastikan alamat benar untuk menghindari penundaan.",
		LangFIL: "Mangyaring ibigay ang iyong email address kung saan ipapadala ang SAFT agreement para sa pagpirma sa pamamagitan ng DocuSign. Tiyakin na tama ang address upang maiwasan ang mga pagkaantala.",
		LangVI:  "Vui lòng cung cấp địa chỉ email của bạn, nơi thỏa thuận SAFT sẽ được gửi để ký thông qua DocuSign. Đảm bảo địa chỉ chính xác để tránh chậm trễ.",
	},
	KeyInvalidEmail: {
		LangEN:  "Invalid email format. Please enter a valid email address:",
		LangRU:  "Неверный формат email. Пожалуйста, введите корректный email:",
		LangZH:  "无效的电子邮件格式。请输入有效的电子邮件地址：",
		LangID:  "Format email tidak valid. Silakan masukkan alamat email yang valid:",
		LangFIL: "Formato ng email na hindi valid. Mangyaring ilagay ang address email na may format na valid:",
		LangVI:  "Định dạng email không hợp lệ. Vui lòng nhập địa chỉ email hợp lệ:",
	},
	KeyDocumentSignedButton: {
		LangEN:  "Document Signed ✅",
		LangRU:  "Документ подписан ✅",
		LangZH:  "文件已签署 ✅",
		LangID:  "Dokumen Ditandatangani ✅",
		LangFIL: "Dokumento Ditandatangani ✅",
		LangVI:  "Tài liệu đã ký ✅",
	},
	KeyEnterHash: {
		LangEN:  "Great! Please provide the transaction hash:",
		LangRU:  "Отлично! Пожалуйста, укажите хэш транзакции:",
		LangZH:  "很好！请提供交易哈希：",
		LangID:  "Bagus! Silakan masukkan hash transaksi:",
		LangFIL: "Mahusay! Mangyaring ilagay ang hash transaksi:",
		LangVI:  "Tuyệt! Vui lòng nhập hash giao dịch:",
	},
	KeyInvalidHash: {
		LangEN:  "Invalid transaction hash format. The hash should:\n- Start with '0x'\n- Contain 66 characters\n- Contain only numbers and letters A-F\n\nExample:\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\nPlease enter a valid transaction hash:",
		LangRU:  "Неверный формат хэша транзакции. Хэш должен:\n- Начинаться с '0x'\n- Содержать 66 символов\n- Содержать только цифры и буквы A-F\n\nПример:\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\nПожалуйста, введите корректный хэш транзакции:",
		LangZH:  "无效的交易哈希格式。哈希应：\n- 以 '0x' 开头\n- 包含 66 个字符\n- 仅包含数字和字母 A-F\n\n示例：\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\n请输入有效的交易哈希：",
		LangID:  "Format hash transaksi tidak valid. Hash harus:\n- Mulai dengan '0x'\n- Mempunyai 66 karakter\n- Hanya terdiri dari angka dan huruf A-F\n\nContoh:\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\nSilakan masukkan hash transaksi yang valid:",
		LangFIL: "Formato ng hash transaksi na hindi valid. Ang hash ay dapat:\n- Magsimula sa '0x'\n- Magkaroon ng 66 mga character\n- Magkaroon lamang ng mga numero at mga letra A-F\n\nHalimbawa:\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\nMangyaring ilagay ang hash transaksi na may format na valid:",
		LangVI:  "Định dạng hash giao dịch không hợp lệ. Hash phải:\n- Bắt đầu bằng '0x'\n- Có 66 ký tự\n- Chỉ chứa các chữ số và chữ cái A-F\n\nVí dụ:\n0x67db4dc0c1ac13bcb0e28fe7652e509fa371c00159bea920719f3a256475ceb9\n\nVui lòng nhập hash giao dịch hợp lệ:",
	},
	KeyEnterWallet: {
		LangEN:  "Please provide your EVM wallet address:\n\nFormat:\n- Starts with '0x'\n- Contains 42 characters\n- Contains only numbers and letters A-F\n\nExample:\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
		LangRU:  "Введите адрес вашего EVM кошелька:\n\nФормат:\n- Начинается с '0x'\n- Содержит 42 символа\n- Содержит только цифры и буквы A-F\n\nПример:\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
		LangZH:  "请提供您的EVM钱包地址：\n\n格式：\n- 以 '0x' 开头\n- 包含 42 个字符\n- 仅包含数字和字母 A-F\n\n示例：\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
		LangID:  "Silakan masukkan alamat wallet EVM Anda:\n\nFormat:\n- Mulai dengan '0x'\n- Mempunyai 42 karakter\n- Mempunyai hanya angka dan huruf A-F\n\nContoh:\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
		LangFIL: "Mangyaring ilagay ang address wallet EVM mo:\n\nFormat:\n- Magsimula sa '0x'\n- Mampung 42 mga character\n- Mampung lamang mga numero at mga letra A-F\n\nHalimbawa:\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
		LangVI:  "Vui lòng cung cấp địa chỉ ví EVM của bạn:\n\nĐịnh dạng:\n- Bắt đầu bằng '0x'\n- Có 42 ký tự\n- Chỉ chứa chữ số và chữ cái A-F\n\nVí dụ:\n0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1",
	},
	KeyInvalidWallet: {
		LangEN:  "Invalid wallet address format. Please enter a valid EVM wallet address:",
		LangRU:  "Неверный формат адреса кошелька. Пожалуйста, введите корректный адрес EVM кошелька:",
		LangZH:  "无效的钱包地址格式。请输入有效的EVM钱包地址：",
		LangID:  "Format alamat wallet EVM tidak valid. Silakan masukkan alamat wallet EVM yang valid:",
		LangFIL: "Formato ng address wallet EVM na hindi valid. Mangyaring ilagay ang address wallet EVM na may format na valid:",
		LangVI:  "Định dạng địa chỉ ví không hợp lệ. Vui lòng nhập địa chỉ ví EVM hợp lệ:",
	},
	KeySuccess: {
		LangEN:  "Thank you! Your information has been recorded. You will receive your tokens soon.",
		LangRU:  "Спасибо! Ваша информация записана. Вы получите токены в ближайшее время.",
		LangZH:  "谢谢！您的信息已记录。您很快会收到代币。",
		LangID:  "Terima kasih! Informasi Anda telah dicatat. Anda akan segera menerima token.",
		LangFIL: "Salamat! Ang iyong impormasyon ay naitala na. Matatanggap mo ang iyong mga token sa lalong madaling panahon.",
		LangVI:  "Cảm ơn bạn! Thông tin của bạn đã được ghi lại. Bạn sẽ sớm nhận được token.",
	},
	KeyRecordError: {
		LangEN:  "There was an error recording your information. Please contact support.",
		LangRU:  "Произошла ошибка при записи информации. Пожалуйста, свяжитесь с поддержкой.",
		LangZH:  "记录信息时出错。请与支持团队联系。",
		LangID:  "Terjadi kesalahan saat mencatat informasi Anda. Silakan hubungi tim dukungan.",
		LangFIL: "May error sa pagtatala ng iyong impormasyon. Mangyaring makipag-ugnayan sa suporta.",
		LangVI:  "Đã xảy ra lỗi khi ghi lại thông tin của bạn. Vui lòng liên hệ với nhóm hỗ trợ.",
	},
	KeyWaitForConfirmation: {
		LangEN:  "Thank you! Please wait for confirmation.",
		LangRU:  "Спасибо! Пожалуйста, ожидайте подтверждения.",
		LangZH:  "谢谢！请等待确认。",
		LangID:  "Terima kasih! Silakan tunggu konfirmasi.",
		LangFIL: "Salamat! Mangyaring maghintay ng kumpirmasyon.",
		LangVI:  "Cảm ơn bạn! Vui lòng đợi xác nhận.",
	},
	KeyDocumentsSent: {
		LangEN:  "Documents have been sent to your email. Please review and sign them.",
		LangRU:  "Документы были отправлены на ваш email. Пожалуйста, ознакомьтесь и подпишите их.",
		LangZH:  "文件已发送到您的电子邮件。请查看并签署。",
		LangID:  "Dokumen telah dikirim ke email Anda. Silakan tinjau dan tandatangani.",
		LangFIL: "Ang mga dokumento ay naipadala sa iyong email. Mangyaring suriin at pirmahan ang mga ito.",
		LangVI:  "Tài liệu đã được gửi đến email của bạn. Vui lòng xem xét và ký tên.",
	},
}
